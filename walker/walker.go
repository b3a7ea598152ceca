package walker

import (
	"fmt"

	"go.uber.org/zap"
)

// Walker encapsulates the mutable state of one walk. The graph and tape are
// borrowed read-only; each Walker owns only its counters.
type Walker struct {
	graph   *Graph
	tape    Tape
	current int
	offset  int
	steps   int
}

// New returns a Walker positioned at start with tape offset 0 and no steps taken.
// Returns ErrGraphNil, ErrEmptyTape or ErrStartNotFound for invalid input.
func New(g *Graph, tape Tape, start int) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(tape) == 0 {
		return nil, ErrEmptyTape
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: index %d of %d", ErrStartNotFound, start, g.Len())
	}

	return &Walker{graph: g, tape: tape, current: start}, nil
}

// Step consumes the next instruction and moves along the matching edge.
// Complexity: O(1).
func (w *Walker) Step() {
	w.current = w.graph.Next(w.current, w.tape[w.offset])
	w.steps++
	w.offset++
	if w.offset == len(w.tape) {
		w.offset = 0
	}
}

// Current returns the index of the node the walker stands on.
func (w *Walker) Current() int { return w.current }

// Offset returns the tape position of the next instruction.
func (w *Walker) Offset() int { return w.offset }

// Steps returns how many steps have been taken.
func (w *Walker) Steps() int { return w.steps }

// State returns the (node, offset) pair.
func (w *Walker) State() State {
	return State{Node: w.current, Offset: w.offset}
}

// stateSpace is the number of distinct States a walk on g with tape can reach.
func stateSpace(g *Graph, tape Tape) int {
	return g.Len() * len(tape)
}

// WalkUntil walks from start until pred holds at the current node and returns
// the number of steps taken (0 if start already satisfies pred).
//
// The state space bounds the search: a target not reached within
// Len()*len(tape) steps can never be reached, and ErrTargetUnreachable is
// returned instead of looping forever.
//
// Complexity: O(Len()*len(tape)) time, O(1) memory.
func WalkUntil(g *Graph, tape Tape, start int, pred func(node int) bool, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if pred == nil {
		return 0, ErrNilPredicate
	}
	w, err := New(g, tape, start)
	if err != nil {
		return 0, err
	}

	bound := stateSpace(g, tape)
	for !pred(w.current) {
		if w.steps >= bound {
			o.Logger.Debug("walk exhausted state space",
				zap.String("start", g.ID(start)),
				zap.Int("steps", w.steps))
			return 0, fmt.Errorf("WalkUntil from %q after %d steps: %w", g.ID(start), w.steps, ErrTargetUnreachable)
		}
		w.Step()
		// cancellation check once per tape revolution
		if w.offset == 0 {
			select {
			case <-o.Ctx.Done():
				return 0, o.Ctx.Err()
			default:
			}
		}
	}

	return w.steps, nil
}
