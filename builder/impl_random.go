// SPDX-License-Identifier: MIT
// Package: tapewalk/builder
//
// impl_random.go — implementation of Random(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each node draws Left then Right uniformly from the block's n nodes
//     (self references allowed), in ascending node order.
//
// Determinism:
//   • Fixed draw order ⇒ identical output for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tapewalk/walker"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor that appends n nodes with random successors.
func Random(n int) Constructor {
	return func(acc *[]walker.Node, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		base := len(*acc)
		for i := 0; i < n; i++ {
			l := cfg.rng.Intn(n)
			r := cfg.rng.Intn(n)
			*acc = append(*acc, walker.Node{
				ID:    cfg.idFn(base + i),
				Left:  cfg.idFn(base + l),
				Right: cfg.idFn(base + r),
			})
		}

		return nil
	}
}
