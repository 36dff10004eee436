package engine

// Rules holds configurable move-engine settings.
type Rules struct {
	AllowFoundationReturn bool // if true, a foundation's top card may be moved back onto the tableau
	CheckRunOrder         bool // if true, a multi-card run must be alternating-color descending to move
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		AllowFoundationReturn: true,
		CheckRunOrder:         false,
	}
}
