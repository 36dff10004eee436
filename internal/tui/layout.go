// Package tui draws a solitaire session on a tcell screen and turns mouse
// and keyboard input into picks.
//
// Screen layout, one cell per card (two with TwiceWidth):
//
//	row 0: four foundations, " ┃ ", then every reserve card
//	row 1: blank
//	row 2+: the tableau, one screen column per pile, bottom card first
package tui

import "github.com/MarcusTL12/solitare/engine"

const (
	separator   = " ┃ "
	sepWidth    = 3
	tableauTop  = 2
	statusSpace = 1 // blank rows between the tableau and the status line
)

// Layout maps between screen cells and table locations.
type Layout struct {
	TwiceWidth bool // pad each card glyph with a space
}

// CardWidth is the number of screen cells one card occupies.
func (l Layout) CardWidth() int {
	if l.TwiceWidth {
		return 2
	}
	return 1
}

func (l Layout) reserveLeft() int { return engine.NumSuits*l.CardWidth() + sepWidth }

// Position returns the top-left screen cell of sel.
func (l Layout) Position(sel engine.Selection) (x, y int) {
	w := l.CardWidth()
	switch s := sel.(type) {
	case engine.Foundation:
		return int(s.Suit) * w, 0
	case engine.Reserve:
		return l.reserveLeft() + s.Index*w, 0
	case engine.Cell:
		return int(s.Column) * w, tableauTop + int(s.Row)
	}
	return -1, -1
}

// HitTest maps a screen cell to the location drawn there. Cells in the
// tableau area map to a Cell even when no card is drawn, so an empty pile
// can be picked as a destination.
func (l Layout) HitTest(x, y int) (engine.Selection, bool) {
	if x < 0 || y < 0 {
		return nil, false
	}
	w := l.CardWidth()
	switch {
	case y == 0:
		if x < engine.NumSuits*w {
			return engine.Foundation{Suit: uint8(x / w)}, true
		}
		if x < l.reserveLeft() {
			return nil, false
		}
		i := (x - l.reserveLeft()) / w
		if i >= engine.DeckSize {
			return nil, false
		}
		return engine.Reserve{Index: i}, true

	case y >= tableauTop && y < tableauTop+engine.MaxHeight:
		c := x / w
		if c >= engine.N {
			return nil, false
		}
		return engine.Cell{Column: uint8(c), Row: uint8(y - tableauTop)}, true
	}
	return nil, false
}

// statusRow is the screen row of the status line for table t.
func statusRow(t *engine.Table) int {
	return tableauTop + int(t.Tallest()) + statusSpace
}
