package engine

// PlayerView is the immutable projection of a GameState handed to a
// strategy: the seat's own full hand, everyone's hand sizes, the live
// set, and the public counters. Views share no memory with the engine;
// mutating one never touches the game.
type PlayerView struct {
	Seat       int
	NumPlayers int
	Hand       Hand
	HandSizes  []int
	Active     *ActiveSet // nil when the table is empty
	Tokens     []int
	Turn       int
	ToAct      int
}

// ViewFor builds the view visible to the given seat. Other seats' hands
// appear only as lengths.
func (g *GameState) ViewFor(seat int) PlayerView {
	tokens := make([]int, g.NumPlayers)
	copy(tokens, g.Tokens)
	return PlayerView{
		Seat:       seat,
		NumPlayers: g.NumPlayers,
		Hand:       g.Hands[seat].Clone(),
		HandSizes:  g.HandSizes(),
		Active:     g.Active.Clone(),
		Tokens:     tokens,
		Turn:       g.Turn,
		ToAct:      g.Current,
	}
}

// clone deep-copies the view.
func (v PlayerView) clone() PlayerView {
	out := v
	out.Hand = v.Hand.Clone()
	out.HandSizes = append([]int(nil), v.HandSizes...)
	out.Active = v.Active.Clone()
	out.Tokens = append([]int(nil), v.Tokens...)
	return out
}

// Preview simulates the view's own seat taking the action, without
// touching any engine state. It returns the resulting view and whether
// the action empties the hand (winning the round). Previews apply the
// same validation as Step, so a legal preview is a legal action; they do
// not model the later sweep of an unbeaten set off the table. Quit
// previews as a no-op.
func (v PlayerView) Preview(a Action) (PlayerView, bool, error) {
	next := v.clone()
	switch a.Kind {
	case ActionQuit:
		return next, false, nil

	case ActionScout:
		hand, set, _, err := scoutApplied(next.Hand, next.Active, a)
		if err != nil {
			return v, false, err
		}
		next.Tokens[next.Active.Owner]++
		next.Hand = hand
		next.Active = set

	case ActionShow:
		hand, shown, err := showApplied(next.Hand, next.Active, a)
		if err != nil {
			return v, false, err
		}
		next.Hand = hand
		next.Active = &ActiveSet{Cards: shown, Owner: v.Seat}

	case ActionScoutShow:
		hand, set, _, err := scoutApplied(next.Hand, next.Active, a)
		if err != nil {
			return v, false, err
		}
		next.Tokens[next.Active.Owner]++
		hand, shown, err := showApplied(hand, set, a)
		if err != nil {
			return v, false, err
		}
		next.Hand = hand
		next.Active = &ActiveSet{Cards: shown, Owner: v.Seat}

	default:
		return v, false, ErrMalformedAction
	}

	next.HandSizes[v.Seat] = len(next.Hand)
	next.Turn++
	next.ToAct = (v.Seat + 1) % v.NumPlayers
	return next, len(next.Hand) == 0, nil
}
