package engine

import "testing"

// TestCardSuitRank verifies Suit/Rank roundtrip for every suit×rank combo.
func TestCardSuitRank(t *testing.T) {
	for s := uint8(0); s < NumSuits; s++ {
		for r := RankAce; r <= RankKing; r++ {
			c := NewCard(s, r)
			if c.Suit() != s || c.Rank() != r {
				t.Errorf("NewCard(%d,%d): Suit=%d Rank=%d", s, r, c.Suit(), c.Rank())
			}
			if !c.Valid() {
				t.Errorf("NewCard(%d,%d) not Valid", s, r)
			}
		}
	}
}

// TestCardIndexBijection verifies Index and CardFromIndex are inverse over all 52 cards.
func TestCardIndexBijection(t *testing.T) {
	seen := make(map[Card]bool)
	for i := 0; i < DeckSize; i++ {
		c := CardFromIndex(i)
		if got := c.Index(); got != i {
			t.Errorf("CardFromIndex(%d).Index() = %d", i, got)
		}
		if seen[c] {
			t.Errorf("CardFromIndex(%d) = %s already produced", i, c)
		}
		seen[c] = true
	}
	if got := NewCard(SuitHearts, RankJack).Index(); got != 13+10 {
		t.Errorf("JH index = %d, want 23", got)
	}
	if got := NewCard(SuitDiamonds, RankKing).Index(); got != 51 {
		t.Errorf("KD index = %d, want 51", got)
	}
}

func TestCardIsRed(t *testing.T) {
	tests := []struct {
		suit uint8
		want bool
	}{
		{SuitSpades, false},
		{SuitHearts, true},
		{SuitClubs, false},
		{SuitDiamonds, true},
	}
	for _, tt := range tests {
		if got := NewCard(tt.suit, RankSeven).IsRed(); got != tt.want {
			t.Errorf("suit %d IsRed = %v, want %v", tt.suit, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		c    Card
		want string
	}{
		{NewCard(SuitSpades, RankAce), "AS"},
		{NewCard(SuitHearts, RankQueen), "QH"},
		{NewCard(SuitClubs, RankTen), "10C"},
		{NewCard(SuitDiamonds, RankTwo), "2D"},
		{EmptyCard, "--"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestNewCardPanics verifies out-of-range construction fails fast.
func TestNewCardPanics(t *testing.T) {
	bad := []struct{ suit, rank uint8 }{
		{4, RankAce},
		{SuitSpades, 0},
		{SuitSpades, 14},
	}
	for _, b := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewCard(%d,%d) did not panic", b.suit, b.rank)
				}
			}()
			NewCard(b.suit, b.rank)
		}()
	}

	defer func() {
		if recover() == nil {
			t.Error("CardFromIndex(52) did not panic")
		}
	}()
	CardFromIndex(DeckSize)
}

func TestSelectionConstructorsPanic(t *testing.T) {
	calls := map[string]func(){
		"foundation": func() { SelectFoundation(4) },
		"reserve":    func() { SelectReserve(-1) },
		"column":     func() { SelectCell(N, 0) },
		"row":        func() { SelectCell(0, MaxHeight) },
	}
	for name, call := range calls {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			call()
		}()
	}
}
