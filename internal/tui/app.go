package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/MarcusTL12/solitare/internal/game"
)

const helpText = "click: pick   right click/esc: cancel   n: new game   q: quit"

// App runs one session on a screen. The screen must already be initialised;
// App enables mouse reporting but leaves Fini to the caller.
type App struct {
	Screen  tcell.Screen
	Session *game.Session
	Layout  Layout

	log     *logrus.Entry
	status  string
	buttons tcell.ButtonMask // buttons held at the previous mouse event
}

// NewApp wires the app to the session's event stream, keeping any handler
// already installed.
func NewApp(screen tcell.Screen, s *game.Session, layout Layout, logger *logrus.Logger) *App {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a := &App{
		Screen:  screen,
		Session: s,
		Layout:  layout,
		log:     logger.WithField("component", "tui"),
	}
	prev := s.OnEvent
	s.OnEvent = func(ev game.Event) {
		if prev != nil {
			prev(ev)
		}
		a.onEvent(ev)
	}
	a.status = fmt.Sprintf("seed %d", s.Seed)
	return a
}

// Run is shorthand for NewApp(...).Run().
func Run(screen tcell.Screen, s *game.Session, layout Layout, logger *logrus.Logger) error {
	return NewApp(screen, s, layout, logger).Run()
}

// Run processes input until the user quits or the screen is finalised.
func (a *App) Run() error {
	a.Screen.EnableMouse()
	a.Screen.HideCursor()
	a.log.Debug("UI started.")
	a.Draw()

	for {
		switch ev := a.Screen.PollEvent().(type) {
		case nil:
			a.log.Debug("Screen closed.")
			return nil
		case *tcell.EventResize:
			a.Screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				a.log.Debug("UI stopped.")
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
		a.Draw()
	}
}

// handleKey reports whether the key quits.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		a.Session.HandleCancel()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'n', 'N':
			a.Session.NewGame(0)
		}
	}
	return false
}

// handleMouse acts on button presses only; releases and drags are ignored.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ a.buttons
	a.buttons = buttons

	switch {
	case pressed&tcell.Button1 != 0:
		x, y := ev.Position()
		sel, ok := a.Layout.HitTest(x, y)
		if !ok {
			a.Session.HandleCancel()
			return
		}
		a.Session.HandlePick(sel)
	case pressed&tcell.Button2 != 0:
		a.Session.HandleCancel()
	}
}

func (a *App) onEvent(ev game.Event) {
	switch ev.Type {
	case game.EventDealt:
		a.status = fmt.Sprintf("seed %d", a.Session.Seed)
	case game.EventArmed:
		a.status = fmt.Sprintf("picked %s", ev.To)
	case game.EventMoved:
		a.status = fmt.Sprintf("moved %s (%d)", ev.Card, ev.Count)
	case game.EventRejected:
		a.status = fmt.Sprintf("cannot move %s to %s", ev.From, ev.To)
	case game.EventAborted, game.EventCancelled:
		a.status = ""
	case game.EventSolved:
		a.status = fmt.Sprintf("solved in %d moves! n: new game", ev.Count)
	case game.EventStuck:
		a.status = "no legal moves left. n: new game"
	}
}

// Status returns the text currently shown on the status line.
func (a *App) Status() string { return a.status }

// Draw repaints the whole screen.
func (a *App) Draw() {
	a.Screen.Clear()
	t := a.Session.Table()
	sel, _ := a.Session.CurrentSelection()
	a.Layout.Draw(a.Screen, t, sel)

	y := statusRow(t)
	x := drawText(a.Screen, 0, y, styleStatus, fmt.Sprintf("moves %d", a.Session.Moves))
	if a.status != "" {
		drawText(a.Screen, x, y, styleStatus, "  "+a.status)
	}
	drawText(a.Screen, 0, y+1, styleDefault, helpText)
	a.Screen.Show()
}

