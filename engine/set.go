package engine

// MaxSetSize is the largest group of cards a player may show at once.
const MaxSetSize = 3

// SetKind classifies the shape of a card group by its visible values.
type SetKind int

const (
	SetInvalid  SetKind = iota
	SetSingle           // one card
	SetFlush            // 2..3 cards of equal visible value
	SetStraight         // 2..3 strictly consecutive values, either direction
)

// ActiveSet is the card group currently holding the table, plus the seat
// that showed it. The table being empty is represented by a nil set.
type ActiveSet struct {
	Cards []Card
	Owner int
}

// Clone returns an independent copy. A nil receiver clones to nil.
func (s *ActiveSet) Clone() *ActiveSet {
	if s == nil {
		return nil
	}
	cards := make([]Card, len(s.Cards))
	copy(cards, s.Cards)
	return &ActiveSet{Cards: cards, Owner: s.Owner}
}

// Rank reports the set's strength key.
func (s *ActiveSet) Rank() Rank { return RankOf(s.Cards) }

// IdentifyValues classifies visible values as a playable shape.
func IdentifyValues(vals []int) SetKind {
	if len(vals) == 0 || len(vals) > MaxSetSize {
		return SetInvalid
	}
	if len(vals) == 1 {
		return SetSingle
	}
	if allEqual(vals) {
		return SetFlush
	}
	if isRun(vals) {
		return SetStraight
	}
	return SetInvalid
}

// IdentifySet classifies cards by their visible values.
func IdentifySet(cards []Card) SetKind { return IdentifyValues(visibleValues(cards)) }

func allEqual(vals []int) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// isRun reports strictly consecutive values, ascending or descending.
func isRun(vals []int) bool {
	step := 1
	if vals[1] < vals[0] {
		step = -1
	}
	for i := 1; i < len(vals); i++ {
		if vals[i]-vals[i-1] != step {
			return false
		}
	}
	return true
}

// Rank is the strength key of a set: size first, then the highest visible
// value. Larger sets always outrank smaller ones; at equal size the
// higher max wins, strictly.
type Rank struct {
	Size int
	Max  int
}

// RankOf computes the rank key of a card group.
func RankOf(cards []Card) Rank {
	r := Rank{Size: len(cards)}
	for i, c := range cards {
		if i == 0 || c.Face > r.Max {
			r.Max = c.Face
		}
	}
	return r
}

// Beats reports whether r strictly outranks other. Equal keys do not beat.
func (r Rank) Beats(other Rank) bool {
	if r.Size != other.Size {
		return r.Size > other.Size
	}
	return r.Max > other.Max
}
