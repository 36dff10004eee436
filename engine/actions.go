package engine

// Transfer describes a completed move.
type Transfer struct {
	Card     Card  // bottom card of what moved
	Count    uint8 // number of cards moved
	Revealed Card  // card turned face up in the source column, EmptyCard if none
}

// Move transfers the card or run at src onto dst if the move is legal.
// An illegal move leaves the table untouched and returns false; that is an
// ordinary outcome, not an error.
func (t *Table) Move(src, dst Selection) (Transfer, bool) {
	if !t.CanMove(src, dst) {
		return Transfer{Card: EmptyCard, Revealed: EmptyCard}, false
	}
	card, count, _ := t.pickup(src)
	tr := Transfer{Card: card, Count: count, Revealed: EmptyCard}

	// Place onto the destination first, then remove from the source.
	switch d := dst.(type) {
	case Foundation:
		t.Foundations[d.Suit]++
	case Cell:
		var run []Card
		if s, ok := src.(Cell); ok {
			col := &t.Columns[s.Column]
			run = col.Cards[s.Row:col.Len]
		} else {
			run = []Card{card}
		}
		t.Columns[d.Column].push(run)
	}

	switch s := src.(type) {
	case Foundation:
		t.Foundations[s.Suit]--
	case Reserve:
		t.Reserve &^= 1 << card.Index()
	case Cell:
		col := &t.Columns[s.Column]
		if col.truncate(s.Row) {
			tr.Revealed = col.Top()
		}
	}
	return tr, true
}
