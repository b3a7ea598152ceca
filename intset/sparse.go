// SPDX-License-Identifier: MIT
// Package: tapewalk/intset
//
// sparse.go — Sparse, a compressed set of ints over a fixed universe [min, max).
//
// Sparse offers the IntSet contract for universes too large or too thinly
// populated for a flat bit vector. Values are stored as uint32 offsets
// (x - min) in a Roaring bitmap, so max - min may not exceed 2^32.

package intset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/tapewalk/set"
)

// maxSparseSpan is the largest universe a Sparse set can address.
const maxSparseSpan = 1 << 32

// Sparse holds a set of ints within [min, max) in a Roaring bitmap.
type Sparse struct {
	min, max int
	rb       *roaring.Bitmap
}

var _ set.Set[int] = (*Sparse)(nil)

// NewSparse returns an empty Sparse set over [min, max).
// Returns ErrInvalidRange if max < min and ErrRangeTooWide if the universe
// exceeds 2^32 values.
func NewSparse(min, max int) (*Sparse, error) {
	if max < min {
		return nil, fmt.Errorf("NewSparse(%d, %d): %w", min, max, ErrInvalidRange)
	}
	if uint64(max-min) > maxSparseSpan {
		return nil, fmt.Errorf("NewSparse(%d, %d): span %d: %w", min, max, uint64(max-min), ErrRangeTooWide)
	}

	return &Sparse{min: min, max: max, rb: roaring.New()}, nil
}

// Min returns the inclusive lower bound of the universe.
func (s *Sparse) Min() int { return s.min }

// Max returns the exclusive upper bound of the universe.
func (s *Sparse) Max() int { return s.max }

func (s *Sparse) inRange(x int) bool {
	return x >= s.min && x < s.max
}

// Add inserts x, or returns ErrOutOfRange when x is outside [min, max).
func (s *Sparse) Add(x int) error {
	if !s.inRange(x) {
		return fmt.Errorf("Add(%d) on [%d, %d): %w", x, s.min, s.max, ErrOutOfRange)
	}
	s.rb.Add(uint32(x - s.min))

	return nil
}

// Remove deletes x. Values outside [min, max) are ignored.
func (s *Sparse) Remove(x int) {
	if !s.inRange(x) {
		return
	}
	s.rb.Remove(uint32(x - s.min))
}

// Contains reports whether x is a member; always false outside [min, max).
func (s *Sparse) Contains(x int) bool {
	if !s.inRange(x) {
		return false
	}

	return s.rb.Contains(uint32(x - s.min))
}

// Clear removes every member.
func (s *Sparse) Clear() { s.rb.Clear() }

// Count returns the number of members.
func (s *Sparse) Count() int { return int(s.rb.GetCardinality()) }

// IntersectInPlace keeps only the members also present in other.
// Returns ErrRangeMismatch when the ranges differ.
func (s *Sparse) IntersectInPlace(other *Sparse) error {
	if s.min != other.min || s.max != other.max {
		return fmt.Errorf("[%d, %d) ∩ [%d, %d): %w", s.min, s.max, other.min, other.max, ErrRangeMismatch)
	}
	s.rb.And(other.rb)

	return nil
}

// Intersect implements set.Set.
func (s *Sparse) Intersect(other set.Set[int]) error {
	if o, ok := other.(*Sparse); ok {
		return s.IntersectInPlace(o)
	}
	keep := roaring.New()
	s.Each(func(x int) bool {
		if other.Contains(x) {
			keep.Add(uint32(x - s.min))
		}
		return true
	})
	s.rb = keep

	return nil
}

// Each calls fn for every member in ascending order until fn returns false.
func (s *Sparse) Each(fn func(x int) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(s.min + int(it.Next())) {
			return
		}
	}
}

// Dense copies s into an IntSet with the same range.
func (s *Sparse) Dense() (*IntSet, error) {
	d, err := New(s.min, s.max)
	if err != nil {
		return nil, err
	}
	var addErr error
	s.Each(func(x int) bool {
		addErr = d.Add(x)
		return addErr == nil
	})
	if addErr != nil {
		return nil, addErr
	}

	return d, nil
}
