// Package tapewalk is a small toolkit for two recurring puzzles: counting
// overlaps between bounded sets of small integers, and following a repeating
// left/right instruction tape through a node graph until it cycles.
//
// What is inside?
//
//	set/      generic Set[T] contract plus AddAll, Intersection, CountMatching
//	intset/   IntSet, a bit-packed set over [min, max) backed by bitset words,
//	          and Sparse, a roaring-bitmap set for wide, thin ranges
//	numeric/  generic GCD / LCM with overflow detection
//	walker/   graph resolution, single-target walks, cycle detection by
//	          visited (node, offset) states, and simultaneous arrival by LCM
//	builder/  deterministic graph fixtures: rings, chains, lollipops, random maps
//
// Quick ASCII example:
//
//	tape: L
//
//	    A ──L──▶ B
//	    ▲        │
//	    └───L────┘        C (unreachable)
//
// Starting at A the walk alternates A, B, A, … and never reaches C; the cycle
// detector reports pre-period 0 and period 2.
//
// Every operation returns sentinel errors that can be matched with errors.Is.
// Walks accept functional options for cancellation (context.Context), logging
// (*zap.Logger) and fan-out limits.
//
//	go get github.com/katalvlaran/tapewalk
package tapewalk
