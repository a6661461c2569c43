package engine

import (
	"errors"
	"reflect"
	"testing"
)

func hand(vals ...int) Hand {
	h := make(Hand, len(vals))
	for i, v := range vals {
		h[i] = Card{Face: v, Back: (v + 1) % 10}
	}
	return h
}

// ---------------------------------------------------------------------------
// ScoutFrom
// ---------------------------------------------------------------------------

// TestScoutFromEnds verifies removal from both ends.
func TestScoutFromEnds(t *testing.T) {
	h := hand(1, 7, 2)

	c, err := h.ScoutFrom(true)
	if err != nil {
		t.Fatalf("ScoutFrom(left): %v", err)
	}
	if c.Face != 1 || !reflect.DeepEqual(h.Visible(), []int{7, 2}) {
		t.Errorf("after left scout: card %v, hand %v", c, h.Visible())
	}

	c, err = h.ScoutFrom(false)
	if err != nil {
		t.Fatalf("ScoutFrom(right): %v", err)
	}
	if c.Face != 2 || !reflect.DeepEqual(h.Visible(), []int{7}) {
		t.Errorf("after right scout: card %v, hand %v", c, h.Visible())
	}
}

// TestScoutFromEmpty verifies the empty-hand guard.
func TestScoutFromEmpty(t *testing.T) {
	h := Hand{}
	if _, err := h.ScoutFrom(true); !errors.Is(err, ErrEmptyHand) {
		t.Errorf("err = %v, want ErrEmptyHand", err)
	}
}

// ---------------------------------------------------------------------------
// InsertAt
// ---------------------------------------------------------------------------

// TestInsertAt verifies insertion at the ends and the interior.
func TestInsertAt(t *testing.T) {
	tests := []struct {
		idx  int
		want []int
	}{
		{0, []int{9, 1, 7, 2}},
		{1, []int{1, 9, 7, 2}},
		{3, []int{1, 7, 2, 9}},
	}
	for _, tt := range tests {
		h := hand(1, 7, 2)
		if err := h.InsertAt(tt.idx, Card{Face: 9, Back: 0}); err != nil {
			t.Fatalf("InsertAt(%d): %v", tt.idx, err)
		}
		if !reflect.DeepEqual(h.Visible(), tt.want) {
			t.Errorf("InsertAt(%d) = %v, want %v", tt.idx, h.Visible(), tt.want)
		}
	}
}

// TestInsertAtOutOfBounds verifies the index guard.
func TestInsertAtOutOfBounds(t *testing.T) {
	for _, idx := range []int{-1, 4} {
		h := hand(1, 7, 2)
		if err := h.InsertAt(idx, Card{Face: 9}); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("InsertAt(%d) err = %v, want ErrIndexOutOfBounds", idx, err)
		}
		if len(h) != 3 {
			t.Errorf("InsertAt(%d) mutated the hand on error", idx)
		}
	}
}

// ---------------------------------------------------------------------------
// RemoveRange
// ---------------------------------------------------------------------------

// TestRemoveRange verifies inclusive removal preserves outside order.
func TestRemoveRange(t *testing.T) {
	h := hand(4, 5, 6, 1, 2)
	removed, err := h.RemoveRange(1, 3)
	if err != nil {
		t.Fatalf("RemoveRange: %v", err)
	}
	if !reflect.DeepEqual(visibleValues(removed), []int{5, 6, 1}) {
		t.Errorf("removed = %v, want [5 6 1]", visibleValues(removed))
	}
	if !reflect.DeepEqual(h.Visible(), []int{4, 2}) {
		t.Errorf("remaining = %v, want [4 2]", h.Visible())
	}
}

// TestRemoveRangeInvalid verifies the range guards.
func TestRemoveRangeInvalid(t *testing.T) {
	tests := []struct{ start, stop int }{
		{-1, 1},
		{2, 1},
		{0, 3},
		{3, 3},
	}
	for _, tt := range tests {
		h := hand(1, 7, 2)
		if _, err := h.RemoveRange(tt.start, tt.stop); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("RemoveRange(%d, %d) err = %v, want ErrInvalidRange", tt.start, tt.stop, err)
		}
		if len(h) != 3 {
			t.Errorf("RemoveRange(%d, %d) mutated the hand on error", tt.start, tt.stop)
		}
	}
}

// ---------------------------------------------------------------------------
// invertibility
// ---------------------------------------------------------------------------

// TestInsertScoutInverts verifies InsertAt at an end followed by
// ScoutFrom the same end recovers the original hand and card.
func TestInsertScoutInverts(t *testing.T) {
	card := Card{Face: 9, Back: 0}
	for _, left := range []bool{true, false} {
		h := hand(1, 7, 2)
		orig := h.Clone()
		idx := 0
		if !left {
			idx = len(h)
		}
		if err := h.InsertAt(idx, card); err != nil {
			t.Fatalf("InsertAt: %v", err)
		}
		got, err := h.ScoutFrom(left)
		if err != nil {
			t.Fatalf("ScoutFrom: %v", err)
		}
		if got != card {
			t.Errorf("left=%v: recovered %v, want %v", left, got, card)
		}
		if !reflect.DeepEqual(h, orig) {
			t.Errorf("left=%v: hand %v, want original %v", left, h, orig)
		}
	}
}
