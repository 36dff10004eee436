package engine

import "fmt"

// Selection addresses a location on the table. It is one of Foundation,
// Reserve or Cell.
type Selection interface {
	isSelection()
	fmt.Stringer
}

// Foundation refers to the top card of one suit's foundation.
type Foundation struct {
	Suit uint8
}

// Reserve refers to the Index-th undealt card in ascending card order.
type Reserve struct {
	Index int
}

// Cell refers to the card at Row of Column, and every card above it.
type Cell struct {
	Column uint8
	Row    uint8
}

func (Foundation) isSelection() {}
func (Reserve) isSelection()    {}
func (Cell) isSelection()       {}

func (s Foundation) String() string { return fmt.Sprintf("foundation(%d)", s.Suit) }
func (s Reserve) String() string    { return fmt.Sprintf("reserve(%d)", s.Index) }
func (s Cell) String() string       { return fmt.Sprintf("cell(%d,%d)", s.Column, s.Row) }

// SelectFoundation returns a Foundation selection. It panics if suit >= 4.
func SelectFoundation(suit uint8) Foundation {
	if suit >= NumSuits {
		panic(fmt.Sprintf("engine: foundation suit %d out of range", suit))
	}
	return Foundation{Suit: suit}
}

// SelectReserve returns a Reserve selection. It panics if i is outside [0,52).
func SelectReserve(i int) Reserve {
	if i < 0 || i >= DeckSize {
		panic(fmt.Sprintf("engine: reserve index %d out of range", i))
	}
	return Reserve{Index: i}
}

// SelectCell returns a Cell selection. It panics if column >= N or row >= MaxHeight.
func SelectCell(column, row uint8) Cell {
	if column >= N || row >= MaxHeight {
		panic(fmt.Sprintf("engine: cell (%d,%d) out of range", column, row))
	}
	return Cell{Column: column, Row: row}
}
