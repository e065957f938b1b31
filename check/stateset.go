package check

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/mucheck/lts"
)

// StateSet is a dense set of LTS states over a fixed universe [0, n).
// Membership is O(1); union, intersection, complement and equality are
// O(n/word). All sets combined by an operation must share the same universe.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet returns the empty set over the universe [0, n).
func NewStateSet(n lts.State) *StateSet {
	return &StateSet{bits: bitset.New(uint(n))}
}

// FullStateSet returns the set holding every state of the universe [0, n).
func FullStateSet(n lts.State) *StateSet {
	s := NewStateSet(n)
	s.bits.FlipRange(0, uint(n))

	return s
}

// Add inserts state x.
func (s *StateSet) Add(x lts.State) { s.bits.Set(uint(x)) }

// Contains reports whether x is a member.
func (s *StateSet) Contains(x lts.State) bool { return s.bits.Test(uint(x)) }

// Count returns the number of members.
func (s *StateSet) Count() int { return int(s.bits.Count()) }

// Clone returns an independent copy.
func (s *StateSet) Clone() *StateSet { return &StateSet{bits: s.bits.Clone()} }

// Equal reports whether s and t hold exactly the same states.
func (s *StateSet) Equal(t *StateSet) bool { return s.bits.Equal(t.bits) }

// IntersectWith replaces s with s ∩ t.
func (s *StateSet) IntersectWith(t *StateSet) { s.bits.InPlaceIntersection(t.bits) }

// UnionWith replaces s with s ∪ t.
func (s *StateSet) UnionWith(t *StateSet) { s.bits.InPlaceUnion(t.bits) }

// Complement returns the universe minus s.
func (s *StateSet) Complement() *StateSet { return &StateSet{bits: s.bits.Complement()} }

// States lists the members in increasing order.
func (s *StateSet) States() []lts.State {
	out := make([]lts.State, 0, s.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, lts.State(i))
	}

	return out
}

// String renders the set as "{0, 2, 5}".
func (s *StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s.States() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(x)))
	}
	b.WriteByte('}')

	return b.String()
}

// preimage returns the states with at least one a-successor inside sat,
// computed from the inverse transition index: the union of a-predecessors
// over sat's members.
func preimage(l *lts.LTS, action string, sat *StateSet) *StateSet {
	out := NewStateSet(l.NumStates())
	for i, ok := sat.bits.NextSet(0); ok; i, ok = sat.bits.NextSet(i + 1) {
		for _, src := range l.Predecessors(lts.State(i), action) {
			out.Add(src)
		}
	}

	return out
}

// diamondSet computes ⟦<a>f⟧ from ⟦f⟧. A state with no a-successors is
// excluded.
func diamondSet(l *lts.LTS, action string, sat *StateSet) *StateSet {
	return preimage(l, action, sat)
}

// boxSet computes ⟦[a]f⟧ from ⟦f⟧: the states with no a-successor outside
// sat. A state with no a-successors qualifies vacuously.
func boxSet(l *lts.LTS, action string, sat *StateSet) *StateSet {
	return preimage(l, action, sat.Complement()).Complement()
}
