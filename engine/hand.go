package engine

import "fmt"

// Hand is an ordered card sequence. Scout hands are never sorted or
// rearranged; the only mutations are the three operations below, each of
// which preserves the relative order of every untouched card.
type Hand []Card

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// Visible returns the face-up values in hand order.
func (h Hand) Visible() []int { return visibleValues(h) }

// ScoutFrom removes and returns the leftmost (left=true) or rightmost
// card of the hand.
func (h *Hand) ScoutFrom(left bool) (Card, error) {
	if len(*h) == 0 {
		return Card{}, ErrEmptyHand
	}
	var c Card
	if left {
		c = (*h)[0]
		*h = (*h)[1:]
	} else {
		c = (*h)[len(*h)-1]
		*h = (*h)[:len(*h)-1]
	}
	return c, nil
}

// InsertAt inserts c at position idx. Index 0 is before the first card
// and len(h) is after the last.
func (h *Hand) InsertAt(idx int, c Card) error {
	if idx < 0 || idx > len(*h) {
		return fmt.Errorf("%w: insert index %d, hand size %d", ErrIndexOutOfBounds, idx, len(*h))
	}
	*h = append(*h, Card{})
	copy((*h)[idx+1:], (*h)[idx:])
	(*h)[idx] = c
	return nil
}

// RemoveRange removes and returns the inclusive range [start, stop].
func (h *Hand) RemoveRange(start, stop int) ([]Card, error) {
	if start < 0 || stop < start || stop >= len(*h) {
		return nil, fmt.Errorf("%w: [%d, %d] of hand size %d", ErrInvalidRange, start, stop, len(*h))
	}
	removed := make([]Card, stop-start+1)
	copy(removed, (*h)[start:stop+1])
	*h = append((*h)[:start], (*h)[stop+1:]...)
	return removed, nil
}
