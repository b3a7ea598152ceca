// SPDX-License-Identifier: MIT
// Package: tapewalk/set
//
// set.go — the Set capability shared by every set representation.
//
// Contract:
//   • Add reports failures (e.g., a value outside a bounded universe) as errors;
//     Remove and Contains never fail.
//   • Intersect keeps only the members also present in other. Implementations
//     may take a fast path for their own concrete type and must fall back to
//     membership tests otherwise.
//   • Each visits members in ascending order until fn returns false.

package set

// Set is a mutable collection of distinct items of type T.
type Set[T any] interface {
	// Add inserts x. Adding an existing member is a no-op.
	Add(x T) error
	// Remove deletes x. Removing a non-member is a no-op.
	Remove(x T)
	// Clear removes every member.
	Clear()
	// Contains reports whether x is a member.
	Contains(x T) bool
	// Count returns the number of members.
	Count() int
	// Intersect removes every member that is not contained in other.
	Intersect(other Set[T]) error
	// Each calls fn for every member until fn returns false.
	Each(fn func(x T) bool)
}

// Collect returns the members of s in iteration order.
// Complexity: O(|s|) plus the cost of Each.
func Collect[T any](s Set[T]) []T {
	out := make([]T, 0, s.Count())
	s.Each(func(x T) bool {
		out = append(out, x)
		return true
	})

	return out
}

// AddAll inserts every item into s, stopping at the first failure.
func AddAll[T any](s Set[T], items ...T) error {
	for _, x := range items {
		if err := s.Add(x); err != nil {
			return err
		}
	}

	return nil
}

// Intersection narrows dst to the members shared with every set in srcs.
// It stops at the first error and leaves dst partially narrowed in that case.
func Intersection[T any](dst Set[T], srcs ...Set[T]) error {
	for _, src := range srcs {
		if err := dst.Intersect(src); err != nil {
			return err
		}
	}

	return nil
}

// CountMatching returns how many of items are members of s.
// Duplicates in items are counted once per occurrence.
func CountMatching[T any](s Set[T], items ...T) int {
	n := 0
	for _, x := range items {
		if s.Contains(x) {
			n++
		}
	}

	return n
}
