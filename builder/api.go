// SPDX-License-Identifier: MIT
// Package: tapewalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildNodes(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors append to a shared node list; each starts numbering where the
//     previous one stopped, so composed fixtures never collide on IDs.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical node lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tapewalk/walker"
)

// Constructor appends a deterministic block of nodes to acc using the
// resolved builderConfig. The first node of the block has global index
// len(*acc); IDs are produced by cfg.idFn from global indices.
//
// Constructors MUST validate parameters before appending anything and return
// sentinel errors (no panics).
type Constructor func(acc *[]walker.Node, cfg builderConfig) error

// BuildNodes resolves the builder configuration from bopts and applies all
// constructors in order, returning the accumulated nodes.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildNodes(bopts []BuilderOption, cons ...Constructor) ([]walker.Node, error) {
	cfg := newBuilderConfig(bopts...)

	var nodes []walker.Node
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNodes: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&nodes, cfg); err != nil {
			return nil, fmt.Errorf("BuildNodes: %w", err)
		}
	}

	return nodes, nil
}

// BuildGraph is BuildNodes followed by walker.BuildGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*walker.Graph, error) {
	nodes, err := BuildNodes(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := walker.BuildGraph(nodes)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
