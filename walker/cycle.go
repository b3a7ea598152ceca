package walker

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/tapewalk/intset"
)

// CycleReport describes where a walk first repeats a State and which steps
// landed on marked nodes before that.
//
//	steps:  0 … Preperiod-1 | Preperiod … Steps-1 | Steps (== state at Preperiod)
//	        └── tail ───────┘└── one loop (Period) ┘
type CycleReport struct {
	// FirstMarked is the first step standing on a marked node, or -1.
	FirstMarked int

	// Period is the loop length in steps: Steps - Preperiod.
	Period int

	// Preperiod is the step at which the repeated State was first visited.
	Preperiod int

	// Steps is the step at which a State was seen for the second time.
	Steps int

	// MarkedSteps lists every step in [0, Steps) that stood on a marked node.
	MarkedSteps []int
}

// HasMarked reports whether any marked node was visited.
func (r CycleReport) HasMarked() bool { return r.FirstMarked >= 0 }

// FindFirstMarkedAndPeriod walks from start, memoizing every State, until a
// State repeats. It reports the first marked step along with the loop's
// period and pre-period.
//
// The memo is an intset.IntSet over the packed state space
// [0, Len()*len(tape)); the visit order is kept to locate the pre-period once
// the repeat is found.
//
// Complexity: O(Len()*len(tape)) time and memory in the worst case.
func FindFirstMarkedAndPeriod(g *Graph, tape Tape, start int, isMarked func(node int) bool, opts ...Option) (CycleReport, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return CycleReport{}, err
	}
	if isMarked == nil {
		return CycleReport{}, ErrNilPredicate
	}
	w, err := New(g, tape, start)
	if err != nil {
		return CycleReport{}, err
	}

	visited, err := intset.New(0, stateSpace(g, tape))
	if err != nil {
		return CycleReport{}, fmt.Errorf("FindFirstMarkedAndPeriod: memo: %w", err)
	}
	var trace []int
	report := CycleReport{FirstMarked: -1}

	for {
		code := w.State().code(len(tape))
		if visited.Contains(code) {
			report.Steps = w.steps
			report.Preperiod = slices.Index(trace, code)
			report.Period = report.Steps - report.Preperiod
			o.Logger.Debug("cycle closed",
				zap.String("start", g.ID(start)),
				zap.Int("preperiod", report.Preperiod),
				zap.Int("period", report.Period),
				zap.Int("first_marked", report.FirstMarked),
				zap.Int("marked", len(report.MarkedSteps)))
			return report, nil
		}
		if err = visited.Add(code); err != nil {
			return CycleReport{}, fmt.Errorf("FindFirstMarkedAndPeriod: memo: %w", err)
		}
		trace = append(trace, code)

		if isMarked(w.current) {
			if report.FirstMarked < 0 {
				report.FirstMarked = w.steps
			}
			report.MarkedSteps = append(report.MarkedSteps, w.steps)
		}

		w.Step()
		if w.offset == 0 {
			select {
			case <-o.Ctx.Done():
				return CycleReport{}, o.Ctx.Err()
			default:
			}
		}
	}
}

// MarkedNodes returns the distinct nodes, in first-visit order, that the
// walk stood on at the report's marked steps. The walk is replayed from start.
func MarkedNodes(g *Graph, tape Tape, start int, r CycleReport) ([]int, error) {
	w, err := New(g, tape, start)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, step := range r.MarkedSteps {
		for w.steps < step {
			w.Step()
		}
		if !slices.Contains(out, w.current) {
			out = append(out, w.current)
		}
	}

	return out, nil
}
