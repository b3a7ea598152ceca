// Package walker implements deterministic walks over a left/right graph
// driven by a repeating instruction tape, with cycle detection by visited-state
// memoization.
//
// What:
//
//   - BuildGraph: resolves symbolic Left/Right references to dense indices once;
//     fails fast on dangling references, duplicates and empty IDs.
//   - WalkUntil: single-target walk; counts steps until a predicate holds.
//     Detects unreachable targets by bounding the walk with the state space.
//   - FindFirstMarkedAndPeriod: walks until a (node, tape offset) State repeats,
//     reporting the first marked step, the pre-period and the period.
//   - CombineByLCM / SimultaneousArrival: combine independent walkers whose
//     marked arrivals are periodic into the first simultaneous arrival.
//
// State model:
//
//	State = (node index, tape offset): at most Len()*len(tape) distinct values
//	transition: node ← Next(node, tape[offset]); offset ← (offset+1) mod len(tape)
//
// Because the transition is a pure function of State over a finite space,
// every walk is a tail (pre-period, possibly empty) followed by a loop (period).
//
// Alignment assumption:
//
// Combining walkers by LCM is not a general algorithm. It is only correct when
// each walker stands on marked nodes exactly at the multiples of one arrival
// period, none of them in the pre-period. SimultaneousArrival validates this
// per walker and returns ErrMisalignedCycle instead of a wrong answer.
//
// Concurrency:
//
// Graph and Tape are read-only after construction and may be shared by any
// number of goroutines. A Walker is owned by one goroutine. SimultaneousArrival
// fans out one walker per start with golang.org/x/sync/errgroup.
//
// Complexity:
//
//   - BuildGraph:               O(V)
//   - WalkUntil:                O(V·T) time, O(1) memory
//   - FindFirstMarkedAndPeriod: O(V·T) time and memory (T = len(tape))
//
// Errors:
//
//   - ErrEmptyGraph, ErrEmptyNodeID, ErrDuplicateNode, ErrDanglingReference
//   - ErrGraphNil, ErrEmptyTape, ErrStartNotFound, ErrNilPredicate
//   - ErrTargetUnreachable, ErrNoStarts, ErrNoMarkedState, ErrMisalignedCycle
//   - ErrInvalidPeriod, ErrOptionViolation, context errors from WithContext
package walker
