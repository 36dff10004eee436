// internal/game/sync_state.go
package game

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/MarcusTL12/solitare/engine"
)

// CardView is a face-up card for display or serialization.
type CardView struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Red  bool   `json:"red"`
}

// SlotView is one tableau position. Face-down cards carry no identity.
type SlotView struct {
	FaceDown bool      `json:"faceDown"`
	Card     *CardView `json:"card,omitempty"`
}

// Snapshot is a read-only view of a session. Hidden tableau cards are
// obfuscated.
type Snapshot struct {
	GameID      uuid.UUID    `json:"gameId"`
	Seed        uint64       `json:"seed"`
	Moves       int          `json:"moves"`
	Foundations []*CardView  `json:"foundations"` // by suit; nil = empty
	Reserve     []CardView   `json:"reserve"`     // ascending card order
	Columns     [][]SlotView `json:"columns"`     // bottom to top
	Selection   string       `json:"selection,omitempty"`
	Solved      bool         `json:"solved"`
}

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	t := &s.table
	snap := Snapshot{
		GameID:      s.GameID,
		Seed:        s.Seed,
		Moves:       s.Moves,
		Foundations: make([]*CardView, engine.NumSuits),
		Reserve:     make([]CardView, 0, t.ReserveLen()),
		Columns:     make([][]SlotView, engine.N),
		Solved:      t.IsSolved(),
	}

	for suit := uint8(0); suit < engine.NumSuits; suit++ {
		if top, ok := t.FoundationTop(suit); ok {
			v := cardView(top)
			snap.Foundations[suit] = &v
		}
	}
	for _, c := range t.ReserveCards() {
		snap.Reserve = append(snap.Reserve, cardView(c))
	}
	for c := 0; c < engine.N; c++ {
		slots := t.ColumnSlots(c)
		col := make([]SlotView, len(slots))
		for i, sl := range slots {
			col[i].FaceDown = sl.FaceDown
			if !sl.FaceDown {
				v := cardView(sl.Card)
				col[i].Card = &v
			}
		}
		snap.Columns[c] = col
	}
	if sel, ok := s.picker.Current(); ok {
		snap.Selection = sel.String()
	}
	return snap
}

func cardView(c engine.Card) CardView {
	return CardView{Rank: rankToString(c.Rank()), Suit: suitToString(c.Suit()), Red: c.IsRed()}
}

// rankToString converts an engine rank to its display string.
func rankToString(r uint8) string {
	switch r {
	case engine.RankAce:
		return "A"
	case engine.RankJack:
		return "J"
	case engine.RankQueen:
		return "Q"
	case engine.RankKing:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// suitToString converts an engine suit to its name.
func suitToString(s uint8) string {
	switch s {
	case engine.SuitSpades:
		return "spades"
	case engine.SuitHearts:
		return "hearts"
	case engine.SuitClubs:
		return "clubs"
	case engine.SuitDiamonds:
		return "diamonds"
	}
	return "unknown"
}
