// SPDX-License-Identifier: MIT
// Package: tapewalk/builder
//
// impl_lollipop.go — implementation of Lollipop(tail, loop) constructor.
//
// Shape:
//
//	t0 → t1 → … → t(tail-1) → c0 → c1 → … → c(loop-1) ─┐
//	                           ↑────────────────────────┘
//
// Contract:
//   • tail ≥ 0, loop ≥ 1 (else ErrTooFewVertices).
//   • Both edges of every node point forward, so the walk is independent of
//     the tape contents: starting at t0 the node sequence has pre-period
//     `tail` and node period `loop`.
//   • Indices: tail nodes first, then loop nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tapewalk/walker"
)

const (
	methodLollipop = "Lollipop"
	minLoopNodes   = 1
	minTailNodes   = 0
)

// Lollipop returns a Constructor that appends a tail feeding into a ring.
func Lollipop(tail, loop int) Constructor {
	return func(acc *[]walker.Node, cfg builderConfig) error {
		if loop < minLoopNodes {
			return fmt.Errorf("%s: loop=%d < min=%d: %w", methodLollipop, loop, minLoopNodes, ErrTooFewVertices)
		}
		if tail < minTailNodes {
			return fmt.Errorf("%s: tail=%d < min=%d: %w", methodLollipop, tail, minTailNodes, ErrTooFewVertices)
		}

		base := len(*acc)
		total := tail + loop
		for i := 0; i < total; i++ {
			next := i + 1
			if next == total {
				next = tail // close the ring
			}
			id, to := cfg.idFn(base+i), cfg.idFn(base+next)
			*acc = append(*acc, walker.Node{ID: id, Left: to, Right: to})
		}

		return nil
	}
}
