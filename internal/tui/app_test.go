package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcusTL12/solitare/engine"
	"github.com/MarcusTL12/solitare/internal/game"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func newTestApp(t *testing.T, layout Layout) (*App, tcell.SimulationScreen) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	s := game.NewSession(game.Options{Seed: 42, Rules: engine.DefaultRules(), CheckInvariants: true, Logger: logger})
	scr := newSimScreen(t)
	return NewApp(scr, s, layout, logger), scr
}

// click queues a press and release of btn at (x, y).
func click(s tcell.SimulationScreen, x, y int, btn tcell.ButtonMask) {
	s.InjectMouse(x, y, btn, tcell.ModNone)
	s.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	require.NotEmpty(t, c.Runes, "(%d,%d) is empty", x, y)
	fg, bg, _ := c.Style.Decompose()
	return c.Runes[0], fg, bg
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawDeal(t *testing.T) {
	app, scr := newTestApp(t, Layout{})
	app.Draw()
	tb := app.Session.Table()

	r, fg, _ := cellAt(t, scr, 0, 0)
	assert.Equal(t, CardBack, r)
	assert.Equal(t, tcell.ColorDarkGray, fg)

	r, _, _ = cellAt(t, scr, 5, 0)
	assert.Equal(t, '┃', r)

	first, ok := tb.ReserveAt(0)
	require.True(t, ok)
	r, _, bg := cellAt(t, scr, 7, 0)
	assert.Equal(t, Glyph(first), r)
	assert.Equal(t, tcell.ColorWhite, bg)

	r, fg, _ = cellAt(t, scr, 0, 2)
	top := tb.Columns[0].Top()
	assert.Equal(t, Glyph(top), r)
	if top.IsRed() {
		assert.Equal(t, tcell.ColorRed, fg)
	} else {
		assert.Equal(t, tcell.ColorBlack, fg)
	}

	r, fg, _ = cellAt(t, scr, 1, 2)
	assert.Equal(t, CardBack, r)
	assert.Equal(t, tcell.ColorBlue, fg)

	assert.Equal(t, "moves 0  seed 42", rowText(scr, statusRow(tb)))
	assert.Equal(t, helpText, rowText(scr, statusRow(tb)+1))
}

func TestDrawHighlightsRun(t *testing.T) {
	app, scr := newTestApp(t, Layout{TwiceWidth: true})
	require.Equal(t, engine.OutcomeArmed, app.Session.HandlePick(engine.Cell{Column: 6, Row: 6}))
	app.Draw()

	// Column 6 starts at x=12; its only face-up card is row 6.
	_, _, bg := cellAt(t, scr, 12, 8)
	assert.Equal(t, tcell.ColorDarkGreen, bg)
	_, _, bg = cellAt(t, scr, 13, 8)
	assert.Equal(t, tcell.ColorDarkGreen, bg, "padding shares the highlight")
	_, _, bg = cellAt(t, scr, 10, 7)
	assert.Equal(t, tcell.ColorWhite, bg)
	_, _, bg = cellAt(t, scr, 11, 0)
	assert.Equal(t, tcell.ColorWhite, bg)
}

func TestRunExecutesClickedMove(t *testing.T) {
	app, scr := newTestApp(t, Layout{})
	moves := app.Session.Table().LegalMoves()
	require.NotEmpty(t, moves)
	m := moves[0]

	x, y := app.Layout.Position(m.From)
	click(scr, x, y, tcell.Button1)
	x, y = app.Layout.Position(m.To)
	click(scr, x, y, tcell.Button1)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Run())
	assert.Equal(t, 1, app.Session.Moves)
	assert.True(t, strings.HasPrefix(app.Status(), "moved "), app.Status())
	_, armed := app.Session.CurrentSelection()
	assert.False(t, armed)
}

func TestRunCancels(t *testing.T) {
	app, scr := newTestApp(t, Layout{})
	var events []game.EventType
	app.Session.OnEvent = func(ev game.Event) { events = append(events, ev.Type) }
	app = NewApp(scr, app.Session, app.Layout, nil)

	x, y := app.Layout.Position(engine.Reserve{Index: 0})
	click(scr, x, y, tcell.Button1)
	click(scr, 0, 0, tcell.Button2)
	click(scr, x, y, tcell.Button1)
	click(scr, 5, 0, tcell.Button1) // separator
	scr.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.NoError(t, app.Run())
	_, armed := app.Session.CurrentSelection()
	assert.False(t, armed)
	assert.Equal(t, []game.EventType{
		game.EventArmed, game.EventCancelled,
		game.EventArmed, game.EventCancelled,
	}, events)
}

func TestRunKeys(t *testing.T) {
	app, scr := newTestApp(t, Layout{})
	first := app.Session.GameID
	x, y := app.Layout.Position(engine.Reserve{Index: 0})
	click(scr, x, y, tcell.Button1)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Run())
	assert.NotEqual(t, first, app.Session.GameID)
	assert.Equal(t, 0, app.Session.Moves)
	_, armed := app.Session.CurrentSelection()
	assert.False(t, armed)
	assert.True(t, strings.HasPrefix(app.Status(), "seed "), app.Status())
}
