// SPDX-License-Identifier: MIT
// Package: tapewalk/builder
//
// impl_ring.go — implementation of Ring(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n == 1 yields a single self-looping node.
//   • Node i: Left → (i+1)%n, Right → (i-1+n)%n. A tape of only L walks the
//     ring forward with period n; only R walks it backward.
//   • IDs via cfg.idFn over global indices, in ascending order.
//
// Complexity:
//   • Time: O(n). Space: O(n) appended nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tapewalk/walker"
)

const (
	methodRing   = "Ring"
	minRingNodes = 1
)

// Ring returns a Constructor that appends an n-node bidirectional ring.
func Ring(n int) Constructor {
	return func(acc *[]walker.Node, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		base := len(*acc)
		for i := 0; i < n; i++ {
			*acc = append(*acc, walker.Node{
				ID:    cfg.idFn(base + i),
				Left:  cfg.idFn(base + (i+1)%n),
				Right: cfg.idFn(base + (i-1+n)%n),
			})
		}

		return nil
	}
}
