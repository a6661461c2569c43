package engine

import "fmt"

// ActionKind discriminates the four player actions.
type ActionKind int

const (
	ActionScout ActionKind = iota
	ActionShow
	ActionScoutShow
	ActionQuit
)

// Action is one player decision. The scout fields and the show fields are
// both populated only for ActionScoutShow.
type Action struct {
	Kind ActionKind

	// Scout half: which end of the active set to take, whether to flip
	// the card, and where in the hand to insert it.
	Left  bool
	Flip  bool
	Index int

	// Show half: inclusive hand range to play.
	Start int
	Stop  int
}

// Scout takes the chosen end card of the active set into the hand.
func Scout(left, flip bool, index int) Action {
	return Action{Kind: ActionScout, Left: left, Flip: flip, Index: index}
}

// Show plays the inclusive hand range [start, stop] as the new active set.
func Show(start, stop int) Action {
	return Action{Kind: ActionShow, Start: start, Stop: stop}
}

// ScoutShow scouts and then shows as one atomic turn. The show range is
// interpreted against the hand as it stands after the scout insertion.
func ScoutShow(left, flip bool, index, start, stop int) Action {
	return Action{Kind: ActionScoutShow, Left: left, Flip: flip, Index: index, Start: start, Stop: stop}
}

// Quit abandons the round, halting the simulation.
func Quit() Action { return Action{Kind: ActionQuit} }

// String renders the action in the prompt grammar, e.g. "scout 1 0 2".
func (a Action) String() string {
	switch a.Kind {
	case ActionScout:
		return fmt.Sprintf("scout %s %s %d", flag(a.Left), flag(a.Flip), a.Index)
	case ActionShow:
		return fmt.Sprintf("show %d %d", a.Start, a.Stop)
	case ActionScoutShow:
		return fmt.Sprintf("scoutshow %s %s %d %d %d", flag(a.Left), flag(a.Flip), a.Index, a.Start, a.Stop)
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("unknown(%d)", int(a.Kind))
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
