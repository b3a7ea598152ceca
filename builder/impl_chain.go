// SPDX-License-Identifier: MIT
// Package: tapewalk/builder
//
// impl_chain.go — implementation of Chain(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Node i points to i+1 on both sides; the last node points to itself, so
//     every walk reaches it after exactly n-1 steps and stays there.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tapewalk/walker"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain returns a Constructor that appends an n-node chain ending in a sink.
func Chain(n int) Constructor {
	return func(acc *[]walker.Node, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}

		base := len(*acc)
		for i := 0; i < n; i++ {
			next := i + 1
			if next == n {
				next = i // sink
			}
			id, to := cfg.idFn(base+i), cfg.idFn(base+next)
			*acc = append(*acc, walker.Node{ID: id, Left: to, Right: to})
		}

		return nil
	}
}
