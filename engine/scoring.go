package engine

// GameResult is the terminal outcome of a completed round.
type GameResult struct {
	Scores []int // final points per seat
	Winner int   // seat that emptied its hand
	Turns  int   // committed turns in the round
}

// scoreRound settles the round the moment a hand empties: the winner
// takes the rules bonus, every other seat loses a point per card still
// held, the live set's owner is paid a point per card in it, and every
// seat banks its accrued scout tokens. Integer arithmetic throughout.
func (g *GameState) scoreRound() *GameResult {
	scores := make([]int, g.NumPlayers)
	for seat := range scores {
		scores[seat] = g.Tokens[seat]
		if seat == g.Winner {
			scores[seat] += g.Rules.WinnerBonus
		} else {
			scores[seat] -= len(g.Hands[seat])
		}
	}
	if g.Active != nil {
		scores[g.Active.Owner] += len(g.Active.Cards)
	}
	copy(g.Scores, scores)
	return &GameResult{Scores: scores, Winner: g.Winner, Turns: g.Turn}
}
