package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dannunan/scout-game/engine"
)

// Interactive prompts a human for actions over an io.Reader/Writer pair.
//
// The grammar, one action per line:
//
//	scout <left> <flip> <index>
//	show <start> <stop>
//	scoutshow <left> <flip> <index>   (then a second prompt for the show half)
//	quit
//
// Flags accept 1/0 or true/false. Malformed or illegal input re-prompts
// with the reason; end of input is treated as quit.
type Interactive struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewInteractive returns an Interactive strategy reading from in and
// prompting on out.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewScanner(in), out: out}
}

// Decide prompts until the human enters a legal action.
func (s *Interactive) Decide(view engine.PlayerView) engine.Action {
	legal := engine.LegalActionsView(view)
	for {
		s.printView(view)
		fmt.Fprintf(s.out, "  legal: %d actions\n", len(legal))
		fmt.Fprint(s.out, "select action: ")
		line, ok := s.readLine()
		if !ok {
			return engine.Quit()
		}
		action, err := s.parse(view, line)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n\n", err)
			continue
		}
		if action.Kind == engine.ActionQuit {
			return action
		}
		if !containsAction(legal, action) {
			fmt.Fprintf(s.out, "not a legal action: %s\n\n", action)
			continue
		}
		return action
	}
}

func (s *Interactive) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// parse maps one input line to an action, prompting again for the show
// half of a scoutshow after previewing the scout insertion.
func (s *Interactive) parse(view engine.PlayerView, line string) (engine.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return engine.Action{}, fmt.Errorf("enter: scout, show, scoutshow, or quit")
	}
	switch fields[0] {
	case "quit":
		return engine.Quit(), nil

	case "scout":
		left, flip, index, err := parseScoutArgs(fields[1:])
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Scout(left, flip, index), nil

	case "show":
		start, stop, err := parseShowArgs(fields[1:])
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Show(start, stop), nil

	case "scoutshow":
		left, flip, index, err := parseScoutArgs(fields[1:])
		if err != nil {
			return engine.Action{}, err
		}
		scouted, _, err := view.Preview(engine.Scout(left, flip, index))
		if err != nil {
			return engine.Action{}, fmt.Errorf("scout half is illegal: %v", err)
		}
		s.printHand(scouted)
		fmt.Fprint(s.out, "select show half: ")
		line, ok := s.readLine()
		if !ok {
			return engine.Quit(), nil
		}
		showFields := strings.Fields(line)
		// Accept both "show 1 2" and "1 2".
		if len(showFields) > 0 && showFields[0] == "show" {
			showFields = showFields[1:]
		}
		start, stop, err := parseShowArgs(showFields)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.ScoutShow(left, flip, index, start, stop), nil

	default:
		return engine.Action{}, fmt.Errorf("unknown action %q; enter: scout, show, scoutshow, or quit", fields[0])
	}
}

func parseScoutArgs(args []string) (left, flip bool, index int, err error) {
	if len(args) != 3 {
		return false, false, 0, fmt.Errorf("scout needs: <left> <flip> <index>")
	}
	if left, err = parseFlag(args[0]); err != nil {
		return false, false, 0, err
	}
	if flip, err = parseFlag(args[1]); err != nil {
		return false, false, 0, err
	}
	if index, err = strconv.Atoi(args[2]); err != nil {
		return false, false, 0, fmt.Errorf("bad index %q", args[2])
	}
	return left, flip, index, nil
}

func parseShowArgs(args []string) (start, stop int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("show needs: <start> <stop>")
	}
	if start, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("bad start %q", args[0])
	}
	if stop, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("bad stop %q", args[1])
	}
	return start, stop, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("bad flag %q (use 1/0 or true/false)", s)
}

func containsAction(actions []engine.Action, a engine.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func (s *Interactive) printView(v engine.PlayerView) {
	fmt.Fprintf(s.out, "turn %d, seat %d to act (you are seat %d)\n", v.Turn, v.ToAct, v.Seat)
	if v.Active != nil {
		fmt.Fprintf(s.out, "  table: %v owned by seat %d\n", v.Active.Cards, v.Active.Owner)
	} else {
		fmt.Fprintf(s.out, "  table: empty\n")
	}
	fmt.Fprintf(s.out, "  sizes: %v  tokens: %v\n", v.HandSizes, v.Tokens)
	s.printHand(v)
}

func (s *Interactive) printHand(v engine.PlayerView) {
	fmt.Fprintf(s.out, "  hand:  %v  visible %v\n", v.Hand, v.Hand.Visible())
	idx := make([]int, len(v.Hand))
	for i := range idx {
		idx[i] = i
	}
	fmt.Fprintf(s.out, "  index: %v\n", idx)
}
