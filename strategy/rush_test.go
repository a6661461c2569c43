package strategy

import (
	"testing"

	"github.com/dannunan/scout-game/engine"
)

func view(handVals []int, active []int, owner int) engine.PlayerView {
	h := make(engine.Hand, len(handVals))
	for i, v := range handVals {
		h[i] = engine.Card{Face: v, Back: (v + 1) % 10}
	}
	v := engine.PlayerView{
		Seat:       0,
		NumPlayers: 3,
		Hand:       h,
		HandSizes:  []int{len(h), 5, 5},
		Tokens:     make([]int, 3),
		ToAct:      0,
	}
	if active != nil {
		cards := make([]engine.Card, len(active))
		for i, a := range active {
			cards[i] = engine.Card{Face: a, Back: (a + 1) % 10}
		}
		v.Active = &engine.ActiveSet{Cards: cards, Owner: owner}
	}
	return v
}

// TestTurnsToEmptyFixtures pins the show-count lower bound on known
// hands.
func TestTurnsToEmptyFixtures(t *testing.T) {
	tests := []struct {
		vals []int
		want int
	}{
		{[]int{0}, 1},
		{[]int{0, 1, 2}, 1},
		{[]int{0, 1, 0}, 2},
		{[]int{1, 3, 5}, 3},
		{[]int{1, 3, 1}, 2},
		{[]int{1, 3, 3, 1}, 2},
		{[]int{1, 3, 5, 7, 1}, 4},
		{[]int{7, 3, 2, 1, 4, 7, 1, 2, 1}, 5},
		{nil, 0},
	}
	r := NewRush()
	for _, tt := range tests {
		if got := r.turnsToEmpty(tt.vals); got != tt.want {
			t.Errorf("turnsToEmpty(%v) = %d, want %d", tt.vals, got, tt.want)
		}
	}
}

// TestTurnsToEmptyMemoStable verifies repeated queries agree (the memo
// must not poison later answers).
func TestTurnsToEmptyMemoStable(t *testing.T) {
	r := NewRush()
	vals := []int{7, 3, 2, 1, 4, 7, 1, 2, 1}
	first := r.turnsToEmpty(vals)
	for i := 0; i < 3; i++ {
		if got := r.turnsToEmpty(vals); got != first {
			t.Fatalf("answer drifted from %d to %d", first, got)
		}
	}
}

// TestRushTakesImmediateWin verifies a hand-emptying show wins over any
// slower line.
func TestRushTakesImmediateWin(t *testing.T) {
	v := view([]int{3, 3}, nil, 0)
	got := NewRush().Decide(v)
	if got != engine.Show(0, 1) {
		t.Errorf("Decide = %s, want show 0 1", got)
	}
}

// TestRushPrefersShowOverScout verifies rush plays out rather than
// growing its hand when a show is available.
func TestRushPrefersShowOverScout(t *testing.T) {
	v := view([]int{8, 9, 4}, []int{2}, 1)
	got := NewRush().Decide(v)
	if got.Kind != engine.ActionShow {
		t.Errorf("Decide = %s, want a show", got)
	}
}

// TestRushScoutsWhenBlocked verifies rush falls back to scouting when
// nothing beats the table.
func TestRushScoutsWhenBlocked(t *testing.T) {
	v := view([]int{1, 5, 3}, []int{9, 9, 9}, 1)
	got := NewRush().Decide(v)
	if got.Kind != engine.ActionScout && got.Kind != engine.ActionScoutShow {
		t.Errorf("Decide = %s, want a scout variant", got)
	}
}

// TestRushDeterministic verifies identical views yield identical
// actions, across calls and across fresh instances.
func TestRushDeterministic(t *testing.T) {
	g, err := engine.NewGame(4, 31, engine.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	g.Deal()
	v := g.ViewFor(0)

	r := NewRush()
	first := r.Decide(v)
	for i := 0; i < 5; i++ {
		if got := r.Decide(v); got != first {
			t.Fatalf("same instance diverged: %s vs %s", got, first)
		}
		if got := NewRush().Decide(v); got != first {
			t.Fatalf("fresh instance diverged: %s vs %s", got, first)
		}
	}
}

// TestRushSelfPlay verifies an all-rush table terminates with every
// decision legal at the moment it was made.
func TestRushSelfPlay(t *testing.T) {
	for players := 3; players <= 5; players++ {
		g, err := engine.NewGame(players, uint64(players)*17, engine.DefaultRules())
		if err != nil {
			t.Fatal(err)
		}
		g.Deal()

		bots := make([]*Rush, players)
		for i := range bots {
			bots[i] = NewRush()
		}

		const maxTurns = 2000
		turn := 0
		for ; turn < maxTurns && !g.IsTerminal(); turn++ {
			seat := g.Current
			a := bots[seat].Decide(g.ViewFor(seat))

			legal := engine.LegalActionsView(g.ViewFor(seat))
			found := false
			for _, l := range legal {
				if l == a {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%d players, turn %d: rush chose illegal %s", players, turn, a)
			}
			if _, err := g.Step(a); err != nil {
				t.Fatalf("%d players, turn %d: %v", players, turn, err)
			}
		}
		if !g.IsTerminal() {
			t.Fatalf("%d players: no result within %d turns", players, maxTurns)
		}
		if len(g.Result.Scores) != players {
			t.Fatalf("%d players: result %+v", players, g.Result)
		}
	}
}
