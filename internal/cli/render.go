package cli

import (
	"fmt"
	"io"

	"github.com/dannunan/scout-game/engine"
)

// Renderer writes game views, turn events, and results in a compact
// terminal format.
type Renderer struct {
	out io.Writer
	st  Style
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, st: Style{Color: color}}
}

// Event prints one committed turn.
func (r *Renderer) Event(ev engine.TurnEvent) {
	line := fmt.Sprintf("turn %3d  seat %d  %s", ev.Turn, ev.Seat, r.st.Cyan(ev.Action.String()))
	if ev.TokenTo >= 0 {
		line += r.st.Warn(fmt.Sprintf("  +1 token to seat %d", ev.TokenTo))
	}
	if len(ev.Replaced) > 0 {
		line += r.st.Dim(fmt.Sprintf("  replaced %v", ev.Replaced))
	}
	if len(ev.Retired) > 0 {
		line += r.st.Dim(fmt.Sprintf("  retired %v", ev.Retired))
	}
	line += fmt.Sprintf("  sizes %v", ev.HandSizes)
	fmt.Fprintln(r.out, line)
}

// Result prints the final scores, winner first.
func (r *Renderer) Result(res *engine.GameResult) {
	r.st.Section(r.out, "round over")
	for seat, score := range res.Scores {
		tag := fmt.Sprintf("seat %d  %+d", seat, score)
		if seat == res.Winner {
			tag = r.st.Good(tag + "  (winner)")
		}
		fmt.Fprintf(r.out, "  %s\n", tag)
	}
	fmt.Fprintf(r.out, "  %s\n", r.st.Dim(fmt.Sprintf("%d turns", res.Turns)))
}

// Halt prints the diagnostic state of an abandoned game.
func (r *Renderer) Halt(g *engine.GameState) {
	r.st.Section(r.out, "halted")
	fmt.Fprintf(r.out, "  turn %d, seat %d quit\n", g.Turn, g.Current)
	for seat, h := range g.Hands {
		fmt.Fprintf(r.out, "  seat %d hand %v\n", seat, h)
	}
	if g.Active != nil {
		fmt.Fprintf(r.out, "  table %v owned by seat %d\n", g.Active.Cards, g.Active.Owner)
	}
	fmt.Fprintf(r.out, "  tokens %v\n", g.Tokens)
}
