// SPDX-License-Identifier: MIT
// Package: tapewalk/numeric
//
// numeric.go — greatest common divisor and least common multiple for every
// integer width, written once over constraints.Integer.
//
// Contract:
//   • Results are non-negative; signs of the inputs are ignored.
//   • GCD(0, 0) == 0, LCM(0, x) == 0.
//   • GCD/LCM/LCMAll wrap silently on overflow like ordinary Go arithmetic;
//     CheckedLCM reports it instead.

package numeric

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow indicates a result does not fit in the operand type.
var ErrOverflow = errors.New("numeric: integer overflow")

// ErrNonPositive indicates CheckedLCM received a value <= 0.
var ErrNonPositive = errors.New("numeric: value must be positive")

func abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// GCD returns the greatest common divisor of a and b (Euclid).
// Complexity: O(log min(|a|,|b|)).
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)

	return a / GCD(a, b) * b
}

// LCMAll folds LCM over values. An empty input yields 1, the identity.
func LCMAll[T constraints.Integer](values ...T) T {
	acc := T(1)
	for _, v := range values {
		acc = LCM(acc, v)
	}

	return acc
}

// CheckedLCM is LCMAll for strictly positive inputs that reports overflow
// instead of wrapping. An empty input yields 1.
func CheckedLCM[T constraints.Integer](values ...T) (T, error) {
	acc := T(1)
	for i, v := range values {
		if v <= 0 {
			return 0, fmt.Errorf("CheckedLCM: values[%d]=%d: %w", i, v, ErrNonPositive)
		}
		step := v / GCD(acc, v)
		next := acc * step
		if next/step != acc || next <= 0 {
			return 0, fmt.Errorf("CheckedLCM: lcm(%d, %d): %w", acc, v, ErrOverflow)
		}
		acc = next
	}

	return acc, nil
}
