package engine

// Rand is the entropy source used for shuffling.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// XorShift is a seeded xorshift64 generator.
type XorShift uint64

// NewXorShift returns a generator for seed; xorshift can't start at 0, so 0 becomes 1.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1
	}
	x := XorShift(seed)
	return &x
}

func (r *XorShift) next() uint64 {
	x := uint64(*r)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*r = XorShift(x)
	return x
}

// IntN returns a number in [0, n).
func (r *XorShift) IntN(n int) int {
	if n <= 0 {
		panic("engine: IntN called with n <= 0")
	}
	return int(r.next() % uint64(n))
}

// NewDeck returns the 52 cards in linear index order.
func NewDeck() [DeckSize]Card {
	var deck [DeckSize]Card
	for i := range deck {
		deck[i] = CardFromIndex(i)
	}
	return deck
}

// Shuffle permutes deck in place: each position i is swapped with a
// uniformly chosen position in [i, len).
func Shuffle(deck *[DeckSize]Card, r Rand) {
	for i := 0; i < len(deck); i++ {
		j := i + r.IntN(len(deck)-i)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// DealTable lays out deck without shuffling. Cards are dealt row by row:
// row i receives one card in each of columns i..N-1, so column i ends up
// with i face-down cards under one face-up card. The remaining cards
// form the reserve.
func DealTable(deck [DeckSize]Card, rules Rules) Table {
	t := Table{Rules: rules}
	next := 0
	for row := 0; row < N; row++ {
		for col := row; col < N; col++ {
			t.Columns[col].Cards[row] = deck[next]
			next++
		}
		t.Columns[row].Len = uint8(row + 1)
		t.Columns[row].Hidden = uint8(row)
	}
	for _, card := range deck[next:] {
		t.Reserve |= 1 << card.Index()
	}
	return t
}

// NewTable shuffles a fresh deck with r and deals it.
func NewTable(r Rand, rules Rules) Table {
	deck := NewDeck()
	Shuffle(&deck, r)
	return DealTable(deck, rules)
}
