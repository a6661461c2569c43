package engine

import "fmt"

// Face value bounds. Every card carries two distinct values in
// [MinFace, MaxFace], one per face.
const (
	MinFace = 0
	MaxFace = 9
)

// DeckSize is the number of distinct two-faced cards: one per unordered
// pair of values.
const DeckSize = 45

// Card is one two-faced Scout card. Face is the value currently showing;
// Back is the value on the reversed face. In a fresh deck the smaller
// value faces up.
type Card struct {
	Face int
	Back int
}

// Flipped returns the card turned over.
func (c Card) Flipped() Card { return Card{Face: c.Back, Back: c.Face} }

// String renders the card as face/back, e.g. "3/7".
func (c Card) String() string { return fmt.Sprintf("%d/%d", c.Face, c.Back) }

// visibleValues projects the face-up values of a card group in order.
func visibleValues(cards []Card) []int {
	vals := make([]int, len(cards))
	for i, c := range cards {
		vals[i] = c.Face
	}
	return vals
}

// newDeck enumerates the full deck in a fixed order: every pair {lo, hi}
// with lo < hi, ascending by hi then lo, smaller value face up. Shuffling
// happens at deal time; the population itself is deterministic.
func newDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for hi := MinFace + 1; hi <= MaxFace; hi++ {
		for lo := MinFace; lo < hi; lo++ {
			deck = append(deck, Card{Face: lo, Back: hi})
		}
	}
	return deck
}

// deckFor subsets the full deck so hands divide evenly among the seats:
// three players drop every card carrying a 9 (36 cards, 12 per hand),
// four players drop only the 8/9 card (44 cards, 11 per hand), five
// players use all 45 (9 per hand).
func deckFor(players int) ([]Card, error) {
	full := newDeck()
	switch players {
	case 3:
		deck := make([]Card, 0, 36)
		for _, c := range full {
			if c.Back < MaxFace {
				deck = append(deck, c)
			}
		}
		return deck, nil
	case 4:
		deck := make([]Card, 0, 44)
		for _, c := range full {
			if c.Face == MaxFace-1 && c.Back == MaxFace {
				continue
			}
			deck = append(deck, c)
		}
		return deck, nil
	case 5:
		return full, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, players)
	}
}
