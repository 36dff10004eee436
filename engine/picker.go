package engine

// Outcome is the result of handing one pick to a Picker.
type Outcome uint8

const (
	OutcomeArmed    Outcome = iota // a source is now selected
	OutcomeExecuted                // the armed source was moved onto the pick
	OutcomeRejected                // the pick was a destination but the move was illegal
	OutcomeAborted                 // the pick was neither usable source nor destination
)

func (o Outcome) String() string {
	switch o {
	case OutcomeArmed:
		return "armed"
	case OutcomeExecuted:
		return "executed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

// Picker runs the two-click selection protocol over a Table.
// The zero-value selection (nil) is the idle state.
type Picker struct {
	Table *Table

	armed Selection
	last  Transfer
}

// NewPicker returns an idle picker bound to t.
func NewPicker(t *Table) *Picker {
	return &Picker{Table: t}
}

// Current returns the armed source, if any.
func (p *Picker) Current() (Selection, bool) {
	return p.armed, p.armed != nil
}

// LastTransfer returns what the most recent executed pick moved.
func (p *Picker) LastTransfer() Transfer { return p.last }

// Cancel drops any armed selection.
func (p *Picker) Cancel() { p.armed = nil }

// Pick feeds one user-indicated location through the state machine.
//
//   - idle: a valid source arms it, anything else aborts.
//   - armed: a legal destination executes the move; otherwise a valid
//     source re-arms with the new pick; otherwise the selection is dropped.
func (p *Picker) Pick(sel Selection) Outcome {
	t := p.Table
	if p.armed == nil {
		if t.ValidSource(sel) {
			p.armed = sel
			return OutcomeArmed
		}
		return OutcomeAborted
	}

	src := p.armed
	isDest := t.ValidDestination(sel)
	if isDest {
		if tr, ok := t.Move(src, sel); ok {
			p.armed = nil
			p.last = tr
			return OutcomeExecuted
		}
	}
	if t.ValidSource(sel) {
		p.armed = sel
		return OutcomeArmed
	}
	p.armed = nil
	if isDest {
		return OutcomeRejected
	}
	return OutcomeAborted
}
