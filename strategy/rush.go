// Package strategy provides the built-in Strategy implementations: the
// deterministic Rush bot, a seeded Random baseline, and the
// prompt-driven Interactive strategy for human seats.
package strategy

import (
	"fmt"
	"sort"

	"github.com/dannunan/scout-game/engine"
)

// Rush greedily minimizes the number of shows needed to empty the hand.
// Aggressive early, weak to large mid-game sets. Deterministic: the same
// view always yields the same action.
type Rush struct {
	cache map[string]int // visible-value key -> turns to empty
}

// NewRush returns a Rush strategy with an empty memo. The memo is keyed
// on visible hand values only, so one instance can serve many games.
func NewRush() *Rush {
	return &Rush{cache: make(map[string]int)}
}

// Decide previews every legal action and picks the one whose resulting
// hand empties in the fewest shows. Wins rank first; ties break by kind
// (shows, then scout & shows, then scouts) and then enumeration order.
func (r *Rush) Decide(view engine.PlayerView) engine.Action {
	legal := engine.LegalActionsView(view)
	if len(legal) == 0 {
		return engine.Quit()
	}

	type candidate struct {
		action engine.Action
		turns  int
	}
	ordered := make([]candidate, 0, len(legal))
	for _, kind := range []engine.ActionKind{engine.ActionShow, engine.ActionScoutShow, engine.ActionScout} {
		for _, a := range legal {
			if a.Kind == kind {
				ordered = append(ordered, candidate{action: a, turns: r.lookahead(view, a)})
			}
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].turns < ordered[j].turns })
	return ordered[0].action
}

// lookahead scores an action: 0 for an immediate win, otherwise one plus
// the turns needed to empty the post-action hand.
func (r *Rush) lookahead(view engine.PlayerView, a engine.Action) int {
	next, win, err := view.Preview(a)
	if err != nil {
		return 1 << 16 // legal actions should never error; rank last
	}
	if win {
		return 0
	}
	return r.turnsToEmpty(next.Hand.Visible()) + 1
}

// turnsToEmpty returns the minimum number of shows that empty a hand
// with the given visible values, ignoring rank constraints (a lower
// bound the table can only worsen). Memoized across calls.
func (r *Rush) turnsToEmpty(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	if engine.IdentifyValues(vals) != engine.SetInvalid {
		return 1
	}
	key := fmt.Sprint(vals)
	if n, ok := r.cache[key]; ok {
		return n
	}

	best := len(vals) // singles always work
	for start := 0; start < len(vals); start++ {
		for stop := start; stop < len(vals) && stop-start < engine.MaxSetSize; stop++ {
			if engine.IdentifyValues(vals[start:stop+1]) == engine.SetInvalid {
				continue
			}
			rest := make([]int, 0, len(vals)-(stop-start+1))
			rest = append(rest, vals[:start]...)
			rest = append(rest, vals[stop+1:]...)
			n := r.turnsToEmpty(rest) + 1
			if n == 2 {
				// Hand itself is not showable, so 2 is optimal.
				r.cache[key] = 2
				return 2
			}
			if n < best {
				best = n
			}
		}
	}
	r.cache[key] = best
	return best
}
