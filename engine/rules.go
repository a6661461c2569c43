package engine

// Rules holds configurable scoring settings for a round.
type Rules struct {
	WinnerBonus int // points awarded for emptying your hand
}

// DefaultRules returns the standard Scout rules.
func DefaultRules() Rules {
	return Rules{
		WinnerBonus: 5,
	}
}
