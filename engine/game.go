// Package engine implements the Scout card game rules for one round.
//
// The engine is a pure state machine: NewGame and Deal set up a round,
// Step applies a single validated action, and LegalActions enumerates
// the moves open to the seat to act. All randomness comes from the seed,
// so the same seed and action sequence replays the same round. A
// GameState is not safe for concurrent use; run one goroutine per game.
package engine

import "fmt"

// Supported table sizes.
const (
	MinPlayers = 3
	MaxPlayers = 5
)

// GameState holds the complete state of one Scout round.
type GameState struct {
	NumPlayers int
	Hands      []Hand
	Active     *ActiveSet // nil when the table is empty
	Current    int        // seat to act
	Tokens     []int      // scout tokens credited per seat, live
	Scores     []int      // final scores, filled when the round ends
	Discard    []Card     // retired cards, out of play
	Turn       int        // committed turns so far
	Winner     int        // -1 until the round ends
	Over       bool
	Halted     bool
	Result     *GameResult // set when the round ends
	Rules      Rules

	RNG   uint64 // xorshift state, seeded by NewGame
	dealt int    // cards distributed by Deal, 0 before dealing
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewGame initializes a round for the given seat count, seed, and rules.
// Hands stay empty until Deal is called.
func NewGame(players int, seed uint64, rules Rules) (*GameState, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, players)
	}
	g := &GameState{
		NumPlayers: players,
		Hands:      make([]Hand, players),
		Tokens:     make([]int, players),
		Scores:     make([]int, players),
		Winner:     -1,
		Rules:      rules,
		RNG:        seed,
	}
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	return g, nil
}

// Deal shuffles the deck subset for this seat count and distributes it
// round-robin, one card at a time starting from seat 0. Only the order
// is random; the card population per seat count is fixed.
func (g *GameState) Deal() {
	deck, err := deckFor(g.NumPlayers)
	if err != nil {
		panic(err) // NumPlayers was validated by NewGame
	}

	// Fisher-Yates shuffle.
	for i := len(deck) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}

	per := len(deck) / g.NumPlayers
	for p := range g.Hands {
		g.Hands[p] = make(Hand, 0, per)
	}
	for i, c := range deck {
		p := i % g.NumPlayers
		g.Hands[p] = append(g.Hands[p], c)
	}

	g.dealt = len(deck)
	g.Current = 0
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsTerminal returns true once the round has ended or been halted.
func (g *GameState) IsTerminal() bool { return g.Over || g.Halted }

// NextSeat returns the seat after the given one in turn order.
func (g *GameState) NextSeat(seat int) int {
	return (seat + 1) % g.NumPlayers
}

// HandSizes returns every seat's hand length in seat order.
func (g *GameState) HandSizes() []int {
	sizes := make([]int, g.NumPlayers)
	for i, h := range g.Hands {
		sizes[i] = len(h)
	}
	return sizes
}

// Check verifies structural invariants: seat counts line up, the active
// set is a legal shape within size bounds, and (for dealt games) every
// dealt card is accounted for across hands, table, and discard. Useful
// in tests and long-running simulations.
func (g *GameState) Check() error {
	if len(g.Hands) != g.NumPlayers || len(g.Tokens) != g.NumPlayers || len(g.Scores) != g.NumPlayers {
		return fmt.Errorf("seat slices disagree with player count %d", g.NumPlayers)
	}
	if g.Current < 0 || g.Current >= g.NumPlayers {
		return fmt.Errorf("current seat %d out of range", g.Current)
	}
	if g.Active != nil {
		if len(g.Active.Cards) == 0 || len(g.Active.Cards) > MaxSetSize {
			return fmt.Errorf("active set size %d out of bounds", len(g.Active.Cards))
		}
		if IdentifySet(g.Active.Cards) == SetInvalid {
			return fmt.Errorf("active set %v is not a legal shape", g.Active.Cards)
		}
		if g.Active.Owner < 0 || g.Active.Owner >= g.NumPlayers {
			return fmt.Errorf("active set owner %d out of range", g.Active.Owner)
		}
	}
	for seat, tokens := range g.Tokens {
		if tokens < 0 {
			return fmt.Errorf("seat %d has negative tokens", seat)
		}
	}
	if g.dealt > 0 {
		count := len(g.Discard)
		for _, h := range g.Hands {
			count += len(h)
		}
		if g.Active != nil {
			count += len(g.Active.Cards)
		}
		if count != g.dealt {
			return fmt.Errorf("card conservation broken: %d in play, dealt %d", count, g.dealt)
		}
	}
	return nil
}
