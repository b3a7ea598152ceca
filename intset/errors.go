// SPDX-License-Identifier: MIT
// Package: tapewalk/intset
//
// errors.go — sentinel errors for the intset package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach the offending values with %w wrapping.
//   • Remove/Contains never fail: out-of-range queries are answered, not rejected.

package intset

import "errors"

// ErrInvalidRange indicates a constructor was given max < min.
var ErrInvalidRange = errors.New("intset: max must not be less than min")

// ErrRangeTooWide indicates the requested universe does not fit the
// representation (Sparse is limited to 2^32 offsets).
var ErrRangeTooWide = errors.New("intset: range too wide")

// ErrOutOfRange indicates Add was called with a value outside [min, max).
// The set is left unchanged.
var ErrOutOfRange = errors.New("intset: value out of range")

// ErrRangeMismatch indicates two sets with different [min, max) were combined.
var ErrRangeMismatch = errors.New("intset: range mismatch")
