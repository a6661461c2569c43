package engine

import "fmt"

// Outcome says how a committed action left the round.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeRoundOver
	OutcomeHalted
)

// TurnOutcome reports the effect of one committed action.
type TurnOutcome struct {
	Outcome  Outcome
	Result   *GameResult // set for OutcomeRoundOver
	Snapshot *GameState  // set for OutcomeHalted
	TokenTo  int         // seat credited a scout token, -1 if none
	Replaced []Card      // set cleared off the table by the show half
	Retired  []Card      // set swept to the discard when the turn returned to its owner
}

// scoutApplied computes the scout half against copies: the chosen end
// card leaves the set, is optionally flipped, and lands in the hand at
// the given index. An emptied set becomes nil.
func scoutApplied(hand Hand, set *ActiveSet, a Action) (Hand, *ActiveSet, Card, error) {
	if set == nil {
		return nil, nil, Card{}, ErrNoActiveSet
	}
	h := hand.Clone()
	s := set.Clone()
	row := Hand(s.Cards)
	c, err := row.ScoutFrom(a.Left)
	if err != nil {
		return nil, nil, Card{}, err
	}
	s.Cards = row
	if a.Flip {
		c = c.Flipped()
	}
	if err := h.InsertAt(a.Index, c); err != nil {
		return nil, nil, Card{}, err
	}
	if len(s.Cards) == 0 {
		s = nil
	}
	return h, s, c, nil
}

// showApplied computes the show half against copies: the inclusive range
// leaves the hand and must form a shape that beats the live set. Any
// shape stands when the table is empty.
func showApplied(hand Hand, set *ActiveSet, a Action) (Hand, []Card, error) {
	h := hand.Clone()
	cards, err := h.RemoveRange(a.Start, a.Stop)
	if err != nil {
		return nil, nil, err
	}
	if IdentifySet(cards) == SetInvalid {
		return nil, nil, fmt.Errorf("%w: %v", ErrIllegalShape, visibleValues(cards))
	}
	if set != nil && !RankOf(cards).Beats(set.Rank()) {
		return nil, nil, fmt.Errorf("%w: %v against %v", ErrInsufficientRank, RankOf(cards), set.Rank())
	}
	return h, cards, nil
}

// Step applies one action for the seat to act. Validation completes
// before any mutation: on error the state is untouched and the same seat
// stays to act. Scout & Show commits both halves or neither.
func (g *GameState) Step(a Action) (TurnOutcome, error) {
	out := TurnOutcome{TokenTo: -1}
	if g.Over || g.Halted {
		return out, fmt.Errorf("round is over")
	}

	actor := g.Current
	switch a.Kind {
	case ActionQuit:
		g.Halted = true
		out.Outcome = OutcomeHalted
		out.Snapshot = g.Clone()
		return out, nil

	case ActionScout:
		hand, set, _, err := scoutApplied(g.Hands[actor], g.Active, a)
		if err != nil {
			return out, err
		}
		owner := g.Active.Owner
		g.Hands[actor] = hand
		g.Active = set
		g.Tokens[owner]++
		out.TokenTo = owner

	case ActionShow:
		hand, shown, err := showApplied(g.Hands[actor], g.Active, a)
		if err != nil {
			return out, err
		}
		if g.Active != nil {
			out.Replaced = g.Active.Cards
			g.Discard = append(g.Discard, g.Active.Cards...)
		}
		g.Hands[actor] = hand
		g.Active = &ActiveSet{Cards: shown, Owner: actor}

	case ActionScoutShow:
		hand, set, _, err := scoutApplied(g.Hands[actor], g.Active, a)
		if err != nil {
			return out, err
		}
		hand, shown, err := showApplied(hand, set, a)
		if err != nil {
			return out, err
		}
		owner := g.Active.Owner
		if set != nil {
			out.Replaced = set.Cards
			g.Discard = append(g.Discard, set.Cards...)
		}
		g.Hands[actor] = hand
		g.Active = &ActiveSet{Cards: shown, Owner: actor}
		g.Tokens[owner]++
		out.TokenTo = owner

	default:
		return out, fmt.Errorf("%w: kind %d", ErrMalformedAction, int(a.Kind))
	}

	g.Turn++

	if len(g.Hands[actor]) == 0 {
		g.Over = true
		g.Winner = actor
		g.Result = g.scoreRound()
		out.Outcome = OutcomeRoundOver
		out.Result = g.Result
		return out, nil
	}

	// Turn passes on. A set surviving a full orbit back to its owner is
	// swept off the table; the owner keeps their tokens and must show
	// onto an empty table.
	g.Current = g.NextSeat(actor)
	if g.Active != nil && g.Active.Owner == g.Current {
		out.Retired = g.Active.Cards
		g.Discard = append(g.Discard, g.Active.Cards...)
		g.Active = nil
	}
	out.Outcome = OutcomeContinue
	return out, nil
}
