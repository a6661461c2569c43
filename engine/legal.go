package engine

// legalMoves enumerates every legal action for a hand against the given
// set, in a fixed order: shows by ascending (start, stop), then scouts by
// end/flip/index, then scout & shows in scout-then-show order. The order
// is part of the contract; deterministic strategies break ties by it.
func legalMoves(hand Hand, set *ActiveSet) []Action {
	var moves []Action

	moves = appendShows(moves, hand, set, func(start, stop int) Action {
		return Show(start, stop)
	})

	if set == nil {
		return moves
	}

	scouts := scoutVariants(set, len(hand))
	for _, sc := range scouts {
		moves = append(moves, sc)
	}
	for _, sc := range scouts {
		hand2, set2, _, err := scoutApplied(hand, set, sc)
		if err != nil {
			continue
		}
		moves = appendShows(moves, hand2, set2, func(start, stop int) Action {
			return ScoutShow(sc.Left, sc.Flip, sc.Index, start, stop)
		})
	}
	return moves
}

// appendShows appends every hand range that forms a shape beating the
// set (any shape on an empty table), built through mk so the scout & show
// enumeration can reuse it.
func appendShows(moves []Action, hand Hand, set *ActiveSet, mk func(start, stop int) Action) []Action {
	for start := 0; start < len(hand); start++ {
		for stop := start; stop < len(hand) && stop-start < MaxSetSize; stop++ {
			cards := hand[start : stop+1]
			if IdentifySet(cards) == SetInvalid {
				continue
			}
			if set != nil && !RankOf(cards).Beats(set.Rank()) {
				continue
			}
			moves = append(moves, mk(start, stop))
		}
	}
	return moves
}

// scoutVariants enumerates the distinct scout parameterizations against a
// live set. For a single-card set both ends take the same card, so only
// the left end is offered.
func scoutVariants(set *ActiveSet, handLen int) []Action {
	ends := []bool{true, false}
	if len(set.Cards) == 1 {
		ends = ends[:1]
	}
	var out []Action
	for _, left := range ends {
		for _, flip := range []bool{false, true} {
			for idx := 0; idx <= handLen; idx++ {
				out = append(out, Scout(left, flip, idx))
			}
		}
	}
	return out
}

// LegalActions enumerates the legal moves for the seat to act. A seat is
// never stuck: an empty table always admits a single-card show, and a
// live table always admits a scout.
func (g *GameState) LegalActions() []Action {
	if g.IsTerminal() {
		return nil
	}
	return legalMoves(g.Hands[g.Current], g.Active)
}

// LegalActionsView is the view-level counterpart of LegalActions, for
// strategies deciding from a PlayerView.
func LegalActionsView(v PlayerView) []Action {
	return legalMoves(v.Hand, v.Active)
}
