package engine

// Clone deep-copies the state. The copy shares no memory with the
// original; stepping one never affects the other.
func (g *GameState) Clone() *GameState {
	out := *g
	out.Hands = make([]Hand, len(g.Hands))
	for i, h := range g.Hands {
		out.Hands[i] = h.Clone()
	}
	out.Active = g.Active.Clone()
	out.Tokens = append([]int(nil), g.Tokens...)
	out.Scores = append([]int(nil), g.Scores...)
	out.Discard = append([]Card(nil), g.Discard...)
	if g.Result != nil {
		r := *g.Result
		r.Scores = append([]int(nil), g.Result.Scores...)
		out.Result = &r
	}
	return &out
}

// Snapshot is a saved copy of a GameState, for undo and for verifying
// that rejected actions leave no trace.
type Snapshot struct {
	saved *GameState
}

// Save captures the current state.
func (g *GameState) Save() Snapshot {
	return Snapshot{saved: g.Clone()}
}

// Restore rolls g back to the saved state.
func (s Snapshot) Restore(g *GameState) {
	*g = *s.saved.Clone()
}
