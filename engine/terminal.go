package engine

import "fmt"

// IsSolved returns true when every foundation holds its King.
func (t *Table) IsSolved() bool {
	for _, r := range t.Foundations {
		if r != RankKing {
			return false
		}
	}
	return true
}

// HasLegalMove returns true if at least one legal move exists.
func (t *Table) HasLegalMove() bool {
	for _, src := range t.Sources() {
		if t.Targets(src) != 0 {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the table. A non-nil error
// means the engine itself is broken; callers should treat it as fatal.
func (t *Table) Validate() error {
	if t.Reserve&^reserveMask != 0 {
		return fmt.Errorf("reserve has bits outside the deck: %#x", t.Reserve&^reserveMask)
	}

	var seen [DeckSize]bool
	mark := func(c Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("%s: invalid card %#02x", where, uint8(c))
		}
		if seen[c.Index()] {
			return fmt.Errorf("%s: duplicate card %s", where, c)
		}
		seen[c.Index()] = true
		return nil
	}

	for i := 0; i < DeckSize; i++ {
		if t.Reserve&(1<<i) != 0 {
			if err := mark(CardFromIndex(i), "reserve"); err != nil {
				return err
			}
		}
	}

	for suit := uint8(0); suit < NumSuits; suit++ {
		top := t.Foundations[suit]
		if top > RankKing {
			return fmt.Errorf("foundation %d: rank %d above King", suit, top)
		}
		for r := uint8(1); r <= top; r++ {
			if err := mark(NewCard(suit, r), fmt.Sprintf("foundation %d", suit)); err != nil {
				return err
			}
		}
	}

	for c := range t.Columns {
		col := &t.Columns[c]
		if col.Len > MaxHeight {
			return fmt.Errorf("column %d: length %d exceeds %d", c, col.Len, MaxHeight)
		}
		if col.Hidden > col.Len {
			return fmt.Errorf("column %d: %d hidden of %d cards", c, col.Hidden, col.Len)
		}
		if col.Len > 0 && col.Hidden == col.Len {
			return fmt.Errorf("column %d: no face-up card over %d hidden", c, col.Hidden)
		}
		for r := uint8(0); r < col.Len; r++ {
			if err := mark(col.Cards[r], fmt.Sprintf("column %d row %d", c, r)); err != nil {
				return err
			}
		}
	}

	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("card %s missing from table", CardFromIndex(i))
		}
	}
	return nil
}
