// internal/game/game.go
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MarcusTL12/solitare/engine"
)

// EventType identifies a session event.
type EventType string

// Constants defining the event types emitted through Session.OnEvent.
const (
	EventDealt     EventType = "dealt"     // A new game was dealt.
	EventArmed     EventType = "armed"     // A source is selected.
	EventMoved     EventType = "moved"     // A move was executed.
	EventRevealed  EventType = "revealed"  // A face-down card was turned up by a move.
	EventRejected  EventType = "rejected"  // An illegal move was attempted; selection dropped.
	EventAborted   EventType = "aborted"   // A pick was neither a source nor a destination.
	EventCancelled EventType = "cancelled" // The selection was cancelled.
	EventSolved    EventType = "solved"    // Every foundation holds its King.
	EventStuck     EventType = "stuck"     // No legal move remains.
)

// Event describes something that happened in a session.
type Event struct {
	Type   EventType `json:"type"`
	GameID uuid.UUID `json:"gameId"`
	From   string    `json:"from,omitempty"` // Source selection, if relevant.
	To     string    `json:"to,omitempty"`   // Destination or picked selection.
	Card   string    `json:"card,omitempty"` // Card moved or revealed.
	Count  int       `json:"count,omitempty"`
}

// Options configures a Session.
type Options struct {
	Seed            uint64 // 0 = derive from the clock
	Rules           engine.Rules
	CheckInvariants bool           // validate the table after every move
	Logger          *logrus.Logger // nil = logrus standard logger
}

// Session owns one game: the table, the pick state machine, and the
// bookkeeping around them. It is not safe for concurrent use; a single
// event loop drives it.
type Session struct {
	GameID uuid.UUID // Regenerated on every deal.
	Seed   uint64    // Seed of the current deal.
	Moves  int       // Executed moves in the current deal.

	// OnEvent receives every session event. May be nil.
	OnEvent func(Event)

	opts   Options
	table  engine.Table
	picker *engine.Picker
	logger *logrus.Logger
	log    *logrus.Entry
	over   bool // solved or stuck already reported for this position
}

// NewSession deals a first game.
func NewSession(opts Options) *Session {
	s := &Session{opts: opts, logger: opts.Logger}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	s.NewGame(opts.Seed)
	return s
}

// NewGame discards the current game and deals a new one from seed
// (0 = derive from the clock).
func (s *Session) NewGame(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.GameID = uuid.New()
	s.Seed = seed
	s.Moves = 0
	s.over = false
	s.table = engine.NewTable(engine.NewXorShift(seed), s.opts.Rules)
	s.picker = engine.NewPicker(&s.table)
	s.log = s.logger.WithFields(logrus.Fields{
		"game": s.GameID,
		"seed": seed,
	})
	s.checkInvariants()
	s.log.WithField("reserve", s.table.ReserveLen()).Info("Game dealt.")
	s.fire(Event{Type: EventDealt})
}

// Table returns the live table. Callers must treat it as read-only.
func (s *Session) Table() *engine.Table { return &s.table }

// CurrentSelection returns the armed source, if any.
func (s *Session) CurrentSelection() (engine.Selection, bool) {
	return s.picker.Current()
}

// Targets returns the legal destinations of the armed source.
func (s *Session) Targets() engine.TargetMask {
	src, ok := s.picker.Current()
	if !ok {
		return 0
	}
	return s.table.Targets(src)
}

// HandlePick feeds one pick to the state machine and reports the outcome.
func (s *Session) HandlePick(sel engine.Selection) engine.Outcome {
	src, _ := s.picker.Current()
	out := s.picker.Pick(sel)
	entry := s.log.WithFields(logrus.Fields{"pick": sel.String(), "outcome": out.String()})

	switch out {
	case engine.OutcomeArmed:
		entry.Debug("Selection armed.")
		s.fire(Event{Type: EventArmed, To: sel.String()})

	case engine.OutcomeExecuted:
		s.Moves++
		tr := s.picker.LastTransfer()
		entry.WithFields(logrus.Fields{
			"from":  src.String(),
			"card":  tr.Card.String(),
			"count": tr.Count,
		}).Debug("Move executed.")
		s.fire(Event{Type: EventMoved, From: src.String(), To: sel.String(), Card: tr.Card.String(), Count: int(tr.Count)})
		if tr.Revealed != engine.EmptyCard {
			entry.WithField("card", tr.Revealed.String()).Debug("Card revealed.")
			s.fire(Event{Type: EventRevealed, From: src.String(), Card: tr.Revealed.String()})
		}
		s.checkInvariants()
		s.checkFinished()

	case engine.OutcomeRejected:
		entry.WithField("from", src.String()).Debug("Move rejected.")
		s.fire(Event{Type: EventRejected, From: src.String(), To: sel.String()})

	case engine.OutcomeAborted:
		entry.Debug("Selection aborted.")
		s.fire(Event{Type: EventAborted, To: sel.String()})
	}
	return out
}

// HandleCancel drops the armed selection.
func (s *Session) HandleCancel() {
	if _, ok := s.picker.Current(); !ok {
		return
	}
	s.picker.Cancel()
	s.log.Debug("Selection cancelled.")
	s.fire(Event{Type: EventCancelled})
}

// Solved reports whether the current game is won.
func (s *Session) Solved() bool { return s.table.IsSolved() }

// checkFinished emits solved/stuck once per position that reaches them.
func (s *Session) checkFinished() {
	switch {
	case s.table.IsSolved():
		if !s.over {
			s.log.WithField("moves", s.Moves).Info("Game solved.")
			s.fire(Event{Type: EventSolved, Count: s.Moves})
		}
		s.over = true
	case !s.table.HasLegalMove():
		if !s.over {
			s.log.WithField("moves", s.Moves).Info("No legal moves left.")
			s.fire(Event{Type: EventStuck, Count: s.Moves})
		}
		s.over = true
	default:
		s.over = false
	}
}

// checkInvariants panics through the logger if the table is inconsistent.
func (s *Session) checkInvariants() {
	if !s.opts.CheckInvariants {
		return
	}
	if err := s.table.Validate(); err != nil {
		s.log.WithError(err).Panic("Table invariant violated.")
	}
}

// fire delivers ev to OnEvent, stamping the game id.
func (s *Session) fire(ev Event) {
	if s.OnEvent == nil {
		return
	}
	ev.GameID = s.GameID
	s.OnEvent(ev)
}
