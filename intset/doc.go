// Package intset provides bounded integer sets for small, dense universes.
//
// What:
//
//   - IntSet: one bit per value of [min, max), packed into 64-bit words
//     (github.com/bits-and-blooms/bitset). O(1) Add/Remove/Contains,
//     O(range/64) Count, Clear and intersection. No hashing, no resizing.
//   - Sparse: the same contract over a Roaring bitmap
//     (github.com/RoaringBitmap/roaring/v2) for wide or thinly populated ranges.
//
// Both implement set.Set[int], so callers can depend on the capability rather
// than the representation.
//
// Range policy:
//
//   - Contains returns false and Remove is a no-op for values outside [min, max).
//   - Add of an out-of-range value returns ErrOutOfRange and changes nothing.
//   - Intersecting two sets of the same kind with different ranges returns
//     ErrRangeMismatch and changes nothing.
//
// Errors:
//
//   - ErrInvalidRange   max < min at construction
//   - ErrRangeTooWide   Sparse universe larger than 2^32
//   - ErrOutOfRange     Add outside [min, max)
//   - ErrRangeMismatch  intersection of differently ranged sets
//
// Sets are not safe for concurrent mutation; each instance has one owner.
package intset
