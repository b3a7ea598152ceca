// SPDX-License-Identifier: MIT
// Package: tapewalk/intset
//
// intset.go — IntSet, a dense set of ints over a fixed universe [min, max).
//
// Layout:
//   • One bit per representable value, bit (x - min) in a packed word array.
//   • Storage is ceil((max-min)/64) uint64 words, allocated once and zeroed.
//   • min/max are fixed at construction; there is no resizing.
//
// Complexity:
//   • Add/Remove/Contains: O(1).
//   • Count/Clear/IntersectInPlace: O((max-min)/64).

package intset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tapewalk/set"
)

// IntSet holds a set of ints within [min, max).
// The zero value is an empty set over an empty universe.
type IntSet struct {
	min, max int
	bits     *bitset.BitSet
}

var _ set.Set[int] = (*IntSet)(nil)

// New returns an empty IntSet over [min, max).
// Returns ErrInvalidRange if max < min. min == max is a valid empty universe.
func New(min, max int) (*IntSet, error) {
	if max < min {
		return nil, fmt.Errorf("New(%d, %d): %w", min, max, ErrInvalidRange)
	}

	return &IntSet{
		min:  min,
		max:  max,
		bits: bitset.New(uint(max - min)),
	}, nil
}

// MustNew is like New but panics on an invalid range.
// Intended for fixed, known-good bounds such as package-level tables.
func MustNew(min, max int) *IntSet {
	s, err := New(min, max)
	if err != nil {
		panic(err)
	}

	return s
}

// Min returns the inclusive lower bound of the universe.
func (s *IntSet) Min() int { return s.min }

// Max returns the exclusive upper bound of the universe.
func (s *IntSet) Max() int { return s.max }

// Len returns the size of the universe, max - min.
func (s *IntSet) Len() int { return s.max - s.min }

func (s *IntSet) inRange(x int) bool {
	return x >= s.min && x < s.max
}

// offset maps an in-range value to its bit position.
func (s *IntSet) offset(x int) uint {
	return uint(x - s.min)
}

// Add inserts x. Returns ErrOutOfRange (and leaves the set untouched) when
// x is outside [min, max).
func (s *IntSet) Add(x int) error {
	if !s.inRange(x) {
		return fmt.Errorf("Add(%d) on [%d, %d): %w", x, s.min, s.max, ErrOutOfRange)
	}
	s.bits.Set(s.offset(x))

	return nil
}

// Remove deletes x. Values outside [min, max) are ignored.
func (s *IntSet) Remove(x int) {
	if !s.inRange(x) {
		return
	}
	s.bits.Clear(s.offset(x))
}

// Contains reports whether x is a member; always false outside [min, max).
func (s *IntSet) Contains(x int) bool {
	if !s.inRange(x) {
		return false
	}

	return s.bits.Test(s.offset(x))
}

// Clear removes every member.
func (s *IntSet) Clear() {
	if s.bits != nil {
		s.bits.ClearAll()
	}
}

// Count returns the number of members (population count over all words).
func (s *IntSet) Count() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// IntersectInPlace keeps only the members also present in other.
// Both sets must share the same [min, max), otherwise ErrRangeMismatch is
// returned and s is left unchanged.
func (s *IntSet) IntersectInPlace(other *IntSet) error {
	if s.min != other.min || s.max != other.max {
		return fmt.Errorf("[%d, %d) ∩ [%d, %d): %w", s.min, s.max, other.min, other.max, ErrRangeMismatch)
	}
	if s.bits == nil {
		return nil
	}
	if other.bits == nil {
		s.bits.ClearAll()
		return nil
	}
	s.bits.InPlaceIntersection(other.bits)

	return nil
}

// Intersect implements set.Set. Another *IntSet takes the word-wise path and
// must share the same range; any other implementation is intersected by
// membership tests.
func (s *IntSet) Intersect(other set.Set[int]) error {
	if o, ok := other.(*IntSet); ok {
		return s.IntersectInPlace(o)
	}
	s.Each(func(x int) bool {
		if !other.Contains(x) {
			s.Remove(x)
		}
		return true
	})

	return nil
}

// Each calls fn for every member in ascending order until fn returns false.
func (s *IntSet) Each(fn func(x int) bool) {
	if s.bits == nil {
		return
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !fn(s.min + int(i)) {
			return
		}
	}
}

// Clone returns an independent copy of s.
func (s *IntSet) Clone() *IntSet {
	c := &IntSet{min: s.min, max: s.max}
	if s.bits != nil {
		c.bits = s.bits.Clone()
	}

	return c
}

// Equal reports whether s and other have the same range and members.
func (s *IntSet) Equal(other *IntSet) bool {
	if s.min != other.min || s.max != other.max {
		return false
	}
	if s.bits == nil || other.bits == nil {
		return s.Count() == other.Count()
	}

	return s.bits.Equal(other.bits)
}

// String renders the members as "{3 7}".
func (s *IntSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(x int) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(x))
		return true
	})
	sb.WriteByte('}')

	return sb.String()
}
