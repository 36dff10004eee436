// Package engine implements the table model and move rules of a
// Klondike-style solitaire in which every undealt card stays face up
// and individually playable.
//
// The table is a flat value type (no pointers, no slices) so a game can be
// copied with = and compared with ==. The package performs no I/O.
package engine

import (
	"math/bits"
)

const (
	N         = 7                // number of tableau columns
	MaxHeight = N - 1 + NumRanks // tallest possible column: 6 hidden + King..Ace
)

// reserveMask covers the 52 valid bit positions of Table.Reserve.
const reserveMask uint64 = 1<<DeckSize - 1

// Column is one tableau column. Cards[0:Hidden] are face down,
// Cards[Hidden:Len] are face up.
type Column struct {
	Cards  [MaxHeight]Card
	Len    uint8
	Hidden uint8
}

// Table holds the complete state of one game.
type Table struct {
	Reserve     uint64          // 1 bit per card at Card.Index(), set while undealt
	Foundations [NumSuits]uint8 // rank of the top card per suit, 0 = empty
	Columns     [N]Column
	Rules       Rules
}

// ---------------------------------------------------------------------------
// Column queries
// ---------------------------------------------------------------------------

// Top returns the topmost card, or EmptyCard if the column is empty.
func (c *Column) Top() Card {
	if c.Len == 0 {
		return EmptyCard
	}
	return c.Cards[c.Len-1]
}

// At returns the card at row, or EmptyCard when row is past the top.
func (c *Column) At(row uint8) Card {
	if row >= c.Len {
		return EmptyCard
	}
	return c.Cards[row]
}

// FaceUp returns the number of face-up cards.
func (c *Column) FaceUp() uint8 { return c.Len - c.Hidden }

// IsFaceDown reports whether the card at row is hidden.
func (c *Column) IsFaceDown(row uint8) bool { return row < c.Hidden }

func (c *Column) push(cards []Card) {
	for _, card := range cards {
		c.Cards[c.Len] = card
		c.Len++
	}
}

// truncate shrinks the column to n cards and flips the new top if the
// face-up region became empty. Returns true when a card was revealed.
func (c *Column) truncate(n uint8) bool {
	for i := n; i < c.Len; i++ {
		c.Cards[i] = 0
	}
	c.Len = n
	if c.Hidden > 0 && c.Hidden == c.Len {
		c.Hidden--
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Reserve queries
// ---------------------------------------------------------------------------

// ReserveLen returns the number of undealt cards.
func (t *Table) ReserveLen() int { return bits.OnesCount64(t.Reserve) }

// ReserveAt returns the i-th undealt card in ascending index order.
func (t *Table) ReserveAt(i int) (Card, bool) {
	if i < 0 {
		return EmptyCard, false
	}
	rest := t.Reserve
	for ; rest != 0; i-- {
		bit := bits.TrailingZeros64(rest)
		if i == 0 {
			return CardFromIndex(bit), true
		}
		rest &= rest - 1
	}
	return EmptyCard, false
}

// ReserveCards returns the undealt cards in ascending index order.
func (t *Table) ReserveCards() []Card {
	cards := make([]Card, 0, t.ReserveLen())
	for rest := t.Reserve; rest != 0; rest &= rest - 1 {
		cards = append(cards, CardFromIndex(bits.TrailingZeros64(rest)))
	}
	return cards
}

// InReserve reports whether card is still undealt.
func (t *Table) InReserve(card Card) bool {
	return t.Reserve&(1<<card.Index()) != 0
}

// ---------------------------------------------------------------------------
// Foundation queries
// ---------------------------------------------------------------------------

// FoundationTop returns the top card of the suit's foundation, if any.
func (t *Table) FoundationTop(suit uint8) (Card, bool) {
	r := t.Foundations[suit]
	if r == 0 {
		return EmptyCard, false
	}
	return NewCard(suit, r), true
}
