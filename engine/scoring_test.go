package engine

import (
	"reflect"
	"testing"
)

// TestScoreRoundBreakdown verifies each scoring term in isolation:
// winner bonus, per-card penalties, final set credit, banked tokens.
func TestScoreRoundBreakdown(t *testing.T) {
	g := rig(t, Hand{}, hand(5, 9), hand(8, 3, 1))
	g.Winner = 0
	g.Turn = 12
	g.Tokens = []int{1, 2, 0}
	setTable(g, 0, 4, 4)

	res := g.scoreRound()

	// Seat 0: 1 token + 5 bonus + 2 set cards. Seat 1: 2 tokens - 2
	// cards. Seat 2: 0 tokens - 3 cards.
	want := []int{8, 0, -3}
	if !reflect.DeepEqual(res.Scores, want) {
		t.Errorf("scores = %v, want %v", res.Scores, want)
	}
	if res.Winner != 0 || res.Turns != 12 {
		t.Errorf("result = %+v", res)
	}
	if !reflect.DeepEqual(g.Scores, want) {
		t.Errorf("state scores = %v, want %v", g.Scores, want)
	}
}

// TestScoreRoundNoActiveSet verifies settlement without a live table.
func TestScoreRoundNoActiveSet(t *testing.T) {
	g := rig(t, Hand{}, hand(5), hand(8, 3))
	g.Winner = 0

	res := g.scoreRound()
	if !reflect.DeepEqual(res.Scores, []int{5, -1, -2}) {
		t.Errorf("scores = %v", res.Scores)
	}
}

// TestScoreRoundCustomBonus verifies the rules knob reaches scoring.
func TestScoreRoundCustomBonus(t *testing.T) {
	g := rig(t, Hand{}, hand(5), hand(8))
	g.Rules.WinnerBonus = 10
	g.Winner = 0

	res := g.scoreRound()
	if res.Scores[0] != 10 {
		t.Errorf("winner score = %d, want the custom bonus 10", res.Scores[0])
	}
}

// TestNonWinnerDeltasNonPositive verifies losers never gain from the
// hand term: their delta is -len(hand) before tokens.
func TestNonWinnerDeltasNonPositive(t *testing.T) {
	g := rig(t, Hand{}, hand(5, 9, 1), hand(8))
	g.Winner = 0

	res := g.scoreRound()
	if res.Scores[1] != -3 || res.Scores[2] != -1 {
		t.Errorf("scores = %v, want [-3 -1] for the losers", res.Scores)
	}
}
