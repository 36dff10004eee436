package engine

// Slot is one tableau position as seen by a renderer.
type Slot struct {
	Card     Card
	FaceDown bool
}

// ColumnSlots returns column c bottom to top.
func (t *Table) ColumnSlots(c int) []Slot {
	col := &t.Columns[c]
	slots := make([]Slot, col.Len)
	for r := uint8(0); r < col.Len; r++ {
		slots[r] = Slot{Card: col.Cards[r], FaceDown: col.IsFaceDown(r)}
	}
	return slots
}

// Tallest returns the length of the longest column.
func (t *Table) Tallest() uint8 {
	var h uint8
	for c := range t.Columns {
		h = max(h, t.Columns[c].Len)
	}
	return h
}

// Covers reports whether a renderer should highlight loc while sel is
// selected. A tableau selection covers its whole run.
func Covers(sel, loc Selection) bool {
	switch s := sel.(type) {
	case Foundation:
		l, ok := loc.(Foundation)
		return ok && l.Suit == s.Suit
	case Reserve:
		l, ok := loc.(Reserve)
		return ok && l.Index == s.Index
	case Cell:
		l, ok := loc.(Cell)
		return ok && l.Column == s.Column && l.Row >= s.Row
	}
	return false
}
