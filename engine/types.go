package engine

import (
	"fmt"
	"strconv"
)

// Suit constants, packed into the upper 4 bits of Card.
// Odd suits are red.
const (
	SuitSpades   uint8 = 0
	SuitHearts   uint8 = 1
	SuitClubs    uint8 = 2
	SuitDiamonds uint8 = 3
)

// Rank constants, packed into the lower 4 bits of Card.
const (
	RankAce   uint8 = 1
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
)

const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
// It panics if suit >= 4 or rank is outside [1,13].
func NewCard(suit, rank uint8) Card {
	if suit >= NumSuits || rank < RankAce || rank > RankKing {
		panic(fmt.Sprintf("engine: invalid card suit=%d rank=%d", suit, rank))
	}
	return Card((suit << 4) | rank)
}

// CardFromIndex returns the card at linear index i (suit*13 + rank-1).
func CardFromIndex(i int) Card {
	if i < 0 || i >= DeckSize {
		panic(fmt.Sprintf("engine: card index %d out of range", i))
	}
	return NewCard(uint8(i/NumRanks), uint8(i%NumRanks)+1)
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// IsRed reports whether the card is a heart or a diamond.
func (c Card) IsRed() bool { return c.Suit()&1 == 1 }

// Index returns the linear index in [0,52), used as the reserve bit position.
func (c Card) Index() int { return int(c.Suit())*NumRanks + int(c.Rank()) - 1 }

// Valid reports whether c encodes one of the 52 cards.
func (c Card) Valid() bool {
	return c.Suit() < NumSuits && c.Rank() >= RankAce && c.Rank() <= RankKing
}

var suitLetters = [NumSuits]byte{'S', 'H', 'C', 'D'}

// String returns a short form such as "QH" or "10S".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	if !c.Valid() {
		return fmt.Sprintf("?%02x", uint8(c))
	}
	var r string
	switch c.Rank() {
	case RankAce:
		r = "A"
	case RankJack:
		r = "J"
	case RankQueen:
		r = "Q"
	case RankKing:
		r = "K"
	default:
		r = strconv.Itoa(int(c.Rank()))
	}
	return r + string(suitLetters[c.Suit()])
}
