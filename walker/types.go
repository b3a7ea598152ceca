// Package walker defines types, options and error definitions for
// tape-driven walks over a left/right graph.
package walker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for graph construction and walks.
var (
	// ErrEmptyGraph is returned when BuildGraph receives no nodes.
	ErrEmptyGraph = errors.New("walker: graph has no nodes")

	// ErrEmptyNodeID is returned when a node has an empty identifier.
	ErrEmptyNodeID = errors.New("walker: node ID is empty")

	// ErrDuplicateNode is returned when two nodes share an identifier.
	ErrDuplicateNode = errors.New("walker: duplicate node")

	// ErrDanglingReference is returned when a left/right target names no node.
	ErrDanglingReference = errors.New("walker: dangling reference")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walker: graph is nil")

	// ErrEmptyTape is returned when a walk is started with no instructions.
	ErrEmptyTape = errors.New("walker: instruction tape is empty")

	// ErrInvalidDirection is returned by ParseDirection for runes other than 'L'/'R'.
	ErrInvalidDirection = errors.New("walker: invalid direction")

	// ErrStartNotFound is returned when the start index is not a node of the graph.
	ErrStartNotFound = errors.New("walker: start node not found")

	// ErrNilPredicate is returned when a walk is given a nil predicate.
	ErrNilPredicate = errors.New("walker: predicate is nil")

	// ErrTargetUnreachable is returned by WalkUntil when every reachable state
	// has been visited without satisfying the predicate.
	ErrTargetUnreachable = errors.New("walker: target unreachable")

	// ErrNoStarts is returned by SimultaneousArrival when starts is empty.
	ErrNoStarts = errors.New("walker: no start nodes")

	// ErrNoMarkedState is returned when a walker closes its cycle without ever
	// standing on a marked node.
	ErrNoMarkedState = errors.New("walker: no marked state on walk")

	// ErrMisalignedCycle is returned when a walker's marked steps are not the
	// exact multiples of a single arrival period, so LCM combination would be wrong.
	ErrMisalignedCycle = errors.New("walker: marked steps not aligned with loop period")

	// ErrInvalidPeriod is returned by CombineByLCM for empty or non-positive periods.
	ErrInvalidPeriod = errors.New("walker: invalid period")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walker: invalid option supplied")
)

// Direction selects one of a node's two outgoing edges.
type Direction uint8

const (
	// Left follows a node's left edge.
	Left Direction = iota
	// Right follows a node's right edge.
	Right
)

// String returns "L" or "R".
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps 'L' to Left and 'R' to Right.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
	}
}

// Tape is an ordered instruction sequence, repeated from the start when exhausted.
type Tape []Direction

// ParseTape reads a tape such as "LLR". Surrounding whitespace is ignored.
func ParseTape(s string) (Tape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyTape
	}
	tape := make(Tape, 0, len(s))
	for i, r := range s {
		d, err := ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("ParseTape: offset %d: %w", i, err)
		}
		tape = append(tape, d)
	}

	return tape, nil
}

// String renders the tape back into its "LLR" form.
func (t Tape) String() string {
	var sb strings.Builder
	sb.Grow(len(t))
	for _, d := range t {
		sb.WriteString(d.String())
	}

	return sb.String()
}

// Node is an input record: an identifier and the identifiers of its left and
// right successors. Self references are allowed.
type Node struct {
	ID    string
	Left  string
	Right string
}

// State is the minimal walk state: the current node and the position of the
// next instruction on the tape. Two walks in the same State behave identically
// from then on.
type State struct {
	Node   int
	Offset int
}

// code packs s into [0, nodes*tapeLen).
func (s State) code(tapeLen int) int {
	return s.Node*tapeLen + s.Offset
}

// Option configures walk behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// walk is invoked.
type Option func(*Options)

// Options holds parameters for walks.
type Options struct {
	// Ctx allows cancellation; checked once per tape revolution.
	Ctx context.Context

	// Logger receives debug entries on cycle closure and per-start results.
	Logger *zap.Logger

	// Concurrency bounds the walkers SimultaneousArrival runs at once.
	// Zero means one goroutine per start.
	Concurrency int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op logger
// and unbounded concurrency.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zap.NewNop(),
		Concurrency: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug output to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConcurrency limits how many walkers run in parallel.
//
//	n > 0: at most n goroutines
//	n == 0: one goroutine per start
//	n < 0: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Concurrency cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
