package engine

import "errors"

// Rule violations reported by Step, the hand operations, and the
// validators. Step wraps these with context; callers classify with
// errors.Is. Rule errors are expected control flow (the runner
// re-solicits, the prompt re-asks) and never mutate state.
var (
	ErrInvalidPlayerCount = errors.New("player count must be 3, 4, or 5")
	ErrEmptyHand          = errors.New("hand is empty")
	ErrIndexOutOfBounds   = errors.New("index out of bounds")
	ErrInvalidRange       = errors.New("invalid range")
	ErrNoActiveSet        = errors.New("no active set to scout from")
	ErrIllegalShape       = errors.New("not a single, flush, or straight")
	ErrInsufficientRank   = errors.New("does not beat the active set")
	ErrMalformedAction    = errors.New("malformed action")
)

// IsRuleError reports whether err is one of the rule violations above,
// as opposed to a usage error such as stepping a finished round.
func IsRuleError(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidPlayerCount,
		ErrEmptyHand,
		ErrIndexOutOfBounds,
		ErrInvalidRange,
		ErrNoActiveSet,
		ErrIllegalShape,
		ErrInsufficientRank,
		ErrMalformedAction,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
