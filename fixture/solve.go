// SPDX-License-Identifier: MIT
// Package: tapewalk/fixture

package fixture

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tapewalk/walker"
)

// Build resolves the scenario into a walker graph and tape.
func (s *Scenario) Build() (*walker.Graph, walker.Tape, error) {
	tape, err := walker.ParseTape(s.Tape)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	nodes := make([]walker.Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = walker.Node{ID: n.ID, Left: n.Left, Right: n.Right}
	}
	g, err := walker.BuildGraph(nodes)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return g, tape, nil
}

// Starts returns the start node indices: the single named start, or every
// node whose ID ends in StartSuffix.
func (s *Scenario) Starts(g *walker.Graph) ([]int, error) {
	if s.Start != "" {
		i, ok := g.Index(s.Start)
		if !ok {
			return nil, fmt.Errorf("scenario %q: start %q: %w", s.Name, s.Start, ErrUnknownNode)
		}
		return []int{i}, nil
	}

	return g.Select(func(id string) bool { return strings.HasSuffix(id, s.StartSuffix) }), nil
}

// Marked returns the target predicate over node indices.
func (s *Scenario) Marked(g *walker.Graph) (func(node int) bool, error) {
	if s.Target != "" {
		if _, ok := g.Index(s.Target); !ok {
			return nil, fmt.Errorf("scenario %q: target %q: %w", s.Name, s.Target, ErrUnknownNode)
		}
		return g.Is(s.Target), nil
	}

	return g.Match(func(id string) bool { return strings.HasSuffix(id, s.TargetSuffix) }), nil
}

// Solve runs the scenario: walker.WalkUntil for a named start,
// walker.SimultaneousArrival for a start suffix. opts are passed through.
func (s *Scenario) Solve(opts ...walker.Option) (int, error) {
	g, tape, err := s.Build()
	if err != nil {
		return 0, err
	}
	starts, err := s.Starts(g)
	if err != nil {
		return 0, err
	}
	marked, err := s.Marked(g)
	if err != nil {
		return 0, err
	}

	if s.Start != "" {
		return walker.WalkUntil(g, tape, starts[0], marked, opts...)
	}
	return walker.SimultaneousArrival(g, tape, starts, marked, opts...)
}
