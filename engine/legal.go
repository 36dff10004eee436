package engine

import "math/bits"

// ValidSource reports whether sel names a card that could be picked up.
func (t *Table) ValidSource(sel Selection) bool {
	switch s := sel.(type) {
	case Foundation:
		return s.Suit < NumSuits && t.Foundations[s.Suit] > 0 && t.Rules.AllowFoundationReturn
	case Reserve:
		return s.Index >= 0 && s.Index < t.ReserveLen()
	case Cell:
		if s.Column >= N {
			return false
		}
		col := &t.Columns[s.Column]
		return s.Row >= col.Hidden && s.Row < col.Len
	}
	return false
}

// ValidDestination reports whether sel can receive cards. The row of a
// Cell is ignored: cards always land on top of the column.
func (t *Table) ValidDestination(sel Selection) bool {
	switch s := sel.(type) {
	case Foundation:
		return s.Suit < NumSuits
	case Cell:
		return s.Column < N
	}
	return false
}

// pickup resolves the card a source would move and how many cards move
// with it. count > 1 only for a run taken from the middle of a column.
func (t *Table) pickup(src Selection) (card Card, count uint8, ok bool) {
	if !t.ValidSource(src) {
		return EmptyCard, 0, false
	}
	switch s := src.(type) {
	case Foundation:
		return NewCard(s.Suit, t.Foundations[s.Suit]), 1, true
	case Reserve:
		card, ok = t.ReserveAt(s.Index)
		return card, 1, ok
	case Cell:
		col := &t.Columns[s.Column]
		return col.Cards[s.Row], col.Len - s.Row, true
	}
	return EmptyCard, 0, false
}

// accepts reports whether dst takes card (carrying count cards in total).
func (t *Table) accepts(dst Selection, card Card, count uint8) bool {
	switch d := dst.(type) {
	case Foundation:
		return count == 1 &&
			card.Suit() == d.Suit &&
			card.Rank() == t.Foundations[d.Suit]+1
	case Cell:
		col := &t.Columns[d.Column]
		if col.Len+count > MaxHeight {
			return false
		}
		if col.Len == 0 {
			return card.Rank() == RankKing
		}
		top := col.Top()
		return card.Rank()+1 == top.Rank() && card.IsRed() != top.IsRed()
	}
	return false
}

// runOrdered reports whether the face-up cards of column from row upward
// alternate in color and descend by one.
func (c *Column) runOrdered(row uint8) bool {
	for i := row + 1; i < c.Len; i++ {
		below, above := c.Cards[i-1], c.Cards[i]
		if above.Rank()+1 != below.Rank() || above.IsRed() == below.IsRed() {
			return false
		}
	}
	return true
}

// CanMove reports whether moving src onto dst is legal. The table is not modified.
func (t *Table) CanMove(src, dst Selection) bool {
	if !t.ValidDestination(dst) {
		return false
	}
	card, count, ok := t.pickup(src)
	if !ok {
		return false
	}
	if s, isCell := src.(Cell); isCell {
		if d, ok := dst.(Cell); ok && d.Column == s.Column {
			return false
		}
		if count > 1 && t.Rules.CheckRunOrder && !t.Columns[s.Column].runOrdered(s.Row) {
			return false
		}
	}
	return t.accepts(dst, card, count)
}

// ---------------------------------------------------------------------------
// Target masks
// ---------------------------------------------------------------------------

// TargetMask holds one bit per destination: bits 0–3 are the foundations
// by suit, bits 4–10 the tableau columns.
type TargetMask uint16

const targetBaseColumn = NumSuits

// targetBit returns the mask bit for a destination selection.
func targetBit(dst Selection) (uint, bool) {
	switch d := dst.(type) {
	case Foundation:
		if d.Suit < NumSuits {
			return uint(d.Suit), true
		}
	case Cell:
		if d.Column < N {
			return targetBaseColumn + uint(d.Column), true
		}
	}
	return 0, false
}

// targetAt returns the destination selection for mask bit i.
func targetAt(i int) Selection {
	if i < targetBaseColumn {
		return Foundation{Suit: uint8(i)}
	}
	return Cell{Column: uint8(i - targetBaseColumn)}
}

// Has reports whether dst is set in the mask.
func (m TargetMask) Has(dst Selection) bool {
	bit, ok := targetBit(dst)
	return ok && m&(1<<bit) != 0
}

// Len returns the number of destinations in the mask.
func (m TargetMask) Len() int { return bits.OnesCount16(uint16(m)) }

// Selections lists the destinations in the mask, foundations first.
func (m TargetMask) Selections() []Selection {
	var out []Selection
	for rest := uint16(m); rest != 0; rest &= rest - 1 {
		out = append(out, targetAt(bits.TrailingZeros16(rest)))
	}
	return out
}

// Targets returns every legal destination for src.
func (t *Table) Targets(src Selection) TargetMask {
	var mask TargetMask
	if !t.ValidSource(src) {
		return 0
	}
	for i := 0; i < targetBaseColumn+N; i++ {
		if t.CanMove(src, targetAt(i)) {
			mask |= 1 << i
		}
	}
	return mask
}

// Move pairs a source with a destination.
type Move struct {
	From Selection
	To   Selection
}

// Sources lists every currently valid source: foundations, then reserve
// cards, then face-up tableau cells column by column.
func (t *Table) Sources() []Selection {
	var out []Selection
	for suit := uint8(0); suit < NumSuits; suit++ {
		if s := (Foundation{Suit: suit}); t.ValidSource(s) {
			out = append(out, s)
		}
	}
	for i := 0; i < t.ReserveLen(); i++ {
		out = append(out, Reserve{Index: i})
	}
	for c := uint8(0); c < N; c++ {
		col := &t.Columns[c]
		for r := col.Hidden; r < col.Len; r++ {
			out = append(out, Cell{Column: c, Row: r})
		}
	}
	return out
}

// LegalMoves returns all legal moves (allocates).
func (t *Table) LegalMoves() []Move {
	var moves []Move
	for _, src := range t.Sources() {
		for _, dst := range t.Targets(src).Selections() {
			moves = append(moves, Move{From: src, To: dst})
		}
	}
	return moves
}
