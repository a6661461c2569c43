package engine

import "fmt"

// Strategy decides one action from a seat's view of the game. The
// engine calls Decide exactly once per solicitation and never hands a
// strategy anything but copies; a strategy cannot mutate game state.
type Strategy interface {
	Decide(view PlayerView) Action
}

// maxRejections bounds consecutive invalid actions from one seat before
// a run aborts, so a buggy strategy cannot livelock a simulation.
const maxRejections = 64

// TurnEvent describes one committed turn, for watchers.
type TurnEvent struct {
	Turn      int    // turn number after the commit
	Seat      int    // seat that acted
	Action    Action // the committed action
	TokenTo   int    // seat credited a scout token, -1 if none
	Replaced  []Card // set displaced to the discard by a show
	Retired   []Card // set swept when the turn returned to its owner
	HandSizes []int  // hand lengths after the commit
	Outcome   Outcome
}

// HaltError reports a run abandoned by a Quit, carrying the last
// consistent state for diagnostics.
type HaltError struct {
	State *GameState
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted by seat %d on turn %d", e.State.Current, e.State.Turn)
}

// Run drives a dealt game to completion with one strategy per seat. A
// rule error re-solicits the same seat with state untouched; a Quit
// returns a HaltError wrapping the final snapshot.
func Run(g *GameState, strategies []Strategy) (*GameResult, error) {
	return Watch(g, strategies, nil)
}

// Watch is Run with a hook invoked after every committed turn. The
// event carries copies; the hook must not reach back into the game.
func Watch(g *GameState, strategies []Strategy, hook func(TurnEvent)) (*GameResult, error) {
	if len(strategies) != g.NumPlayers {
		return nil, fmt.Errorf("%d strategies for %d seats", len(strategies), g.NumPlayers)
	}
	rejected := 0
	for !g.IsTerminal() {
		seat := g.Current
		action := strategies[seat].Decide(g.ViewFor(seat))
		out, err := g.Step(action)
		if err != nil {
			if !IsRuleError(err) {
				return nil, err
			}
			rejected++
			if rejected >= maxRejections {
				return nil, fmt.Errorf("seat %d rejected %d times in a row, last: %w", seat, rejected, err)
			}
			continue
		}
		rejected = 0
		if hook != nil {
			hook(TurnEvent{
				Turn:      g.Turn,
				Seat:      seat,
				Action:    action,
				TokenTo:   out.TokenTo,
				Replaced:  out.Replaced,
				Retired:   out.Retired,
				HandSizes: g.HandSizes(),
				Outcome:   out.Outcome,
			})
		}
		switch out.Outcome {
		case OutcomeRoundOver:
			return out.Result, nil
		case OutcomeHalted:
			return nil, &HaltError{State: out.Snapshot}
		}
	}
	return nil, fmt.Errorf("game was already terminal")
}
