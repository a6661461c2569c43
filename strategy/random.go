package strategy

import (
	"math/rand"

	"github.com/dannunan/scout-game/engine"
)

// Random picks uniformly among the legal actions. Useful as a self-play
// baseline and for mixed tables; deterministic for a given seed and
// action sequence.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy driven by the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Decide returns a uniformly random legal action.
func (s *Random) Decide(view engine.PlayerView) engine.Action {
	legal := engine.LegalActionsView(view)
	if len(legal) == 0 {
		return engine.Quit()
	}
	return legal[s.rng.Intn(len(legal))]
}
