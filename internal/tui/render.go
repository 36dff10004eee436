package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/MarcusTL12/solitare/engine"
)

// CardBack is the playing-card back glyph; every card glyph is offset from it.
const CardBack = '🂠'

// glyphSuitRow orders the Unicode card blocks: spades, hearts, diamonds, clubs.
var glyphSuitRow = [engine.NumSuits]rune{0, 1, 3, 2}

// Glyph returns the Unicode playing-card character for c. The Knight
// code point between Jack and Queen is skipped.
func Glyph(c engine.Card) rune {
	rank := rune(c.Rank())
	if rank > rune(engine.RankJack) {
		rank++
	}
	return CardBack + glyphSuitRow[c.Suit()]<<4 + rank
}

var (
	styleDefault   = tcell.StyleDefault
	styleFaceDown  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleEmpty     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	cardBackground = tcell.ColorWhite
	highlightColor = tcell.ColorDarkGreen
)

// cardStyle is the face-up style: suit colour on white, or on dark green
// when highlighted.
func cardStyle(c engine.Card, highlight bool) tcell.Style {
	fg := tcell.ColorBlack
	if c.IsRed() {
		fg = tcell.ColorRed
	}
	bg := cardBackground
	if highlight {
		bg = highlightColor
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// drawCell writes one card-sized cell. With twice width the padding
// shares the glyph's style so a highlighted card reads as one block.
func (l Layout) drawCell(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	s.SetContent(x, y, r, nil, style)
	if l.TwiceWidth {
		s.SetContent(x+1, y, ' ', nil, style)
	}
}

func (l Layout) drawCard(s tcell.Screen, x, y int, c engine.Card, highlight bool) {
	l.drawCell(s, x, y, Glyph(c), cardStyle(c, highlight))
}

// Draw renders the table with sel (may be nil) highlighted.
func (l Layout) Draw(s tcell.Screen, t *engine.Table, sel engine.Selection) {
	covered := func(loc engine.Selection) bool {
		return sel != nil && engine.Covers(sel, loc)
	}

	for suit := uint8(0); suit < engine.NumSuits; suit++ {
		loc := engine.Foundation{Suit: suit}
		x, y := l.Position(loc)
		if top, ok := t.FoundationTop(suit); ok {
			l.drawCard(s, x, y, top, covered(loc))
		} else {
			l.drawCell(s, x, y, CardBack, styleEmpty)
		}
	}

	x := engine.NumSuits * l.CardWidth()
	for _, r := range separator {
		s.SetContent(x, 0, r, nil, styleDefault)
		x++
	}

	for i, c := range t.ReserveCards() {
		loc := engine.Reserve{Index: i}
		x, y := l.Position(loc)
		l.drawCard(s, x, y, c, covered(loc))
	}

	for col := 0; col < engine.N; col++ {
		for row, slot := range t.ColumnSlots(col) {
			loc := engine.Cell{Column: uint8(col), Row: uint8(row)}
			x, y := l.Position(loc)
			if slot.FaceDown {
				l.drawCell(s, x, y, CardBack, styleFaceDown)
				continue
			}
			l.drawCard(s, x, y, slot.Card, covered(loc))
		}
	}
}

// drawText writes str starting at (x, y) and returns the next free column.
func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
