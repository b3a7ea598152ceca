// Package set defines the Set capability: a mutable collection supporting
// add, remove, clear, membership, cardinality and in-place intersection.
//
// Concrete representations live elsewhere (see package intset); code that
// only needs set semantics should accept a set.Set[T] and stay agnostic of
// the storage layout. The helpers Collect, AddAll, Intersection and
// CountMatching work against any implementation.
package set
