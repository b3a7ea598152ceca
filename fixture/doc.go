// SPDX-License-Identifier: MIT
// Package: tapewalk/fixture

// Package fixture loads walk scenarios from TOML files.
//
// A scenario names a tape, a node table and what to look for:
//
//	name = "ghosts"
//	tape = "LR"
//	start_suffix  = "A"   # or: start  = "AAA"
//	target_suffix = "Z"   # or: target = "ZZZ"
//	expect = 6
//
//	[[node]]
//	id = "11A"
//	left = "11B"
//	right = "XXX"
//
// A single start runs walker.WalkUntil; a start suffix runs
// walker.SimultaneousArrival over every matching node.
//
// Decoding is strict: unknown keys are rejected. Field rules are declared as
// validator tags and reported together as ValidationErrors, keyed by the TOML
// field path (e.g. "node.2.left").
package fixture
