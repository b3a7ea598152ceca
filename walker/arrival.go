package walker

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tapewalk/numeric"
)

// CombineByLCM returns the least common multiple of periods.
// Returns ErrInvalidPeriod for an empty list or any period <= 0 and wraps
// numeric.ErrOverflow when the result does not fit in an int.
func CombineByLCM(periods ...int) (int, error) {
	if len(periods) == 0 {
		return 0, fmt.Errorf("CombineByLCM: %w: no periods", ErrInvalidPeriod)
	}
	for i, p := range periods {
		if p <= 0 {
			return 0, fmt.Errorf("CombineByLCM: periods[%d]=%d: %w", i, p, ErrInvalidPeriod)
		}
	}

	return numeric.CheckedLCM(periods...)
}

// ArrivalPeriod returns q such that the walk stands on a marked node at
// exactly the steps {x >= Preperiod : x % q == 0}.
//
// This holds only when no marked step falls in the pre-period, the marked
// steps inside one loop are evenly spaced by q = Period/k (k marked steps per
// loop) and each is a multiple of q. Otherwise ErrMisalignedCycle is
// returned; ErrNoMarkedState if nothing was marked.
func (r CycleReport) ArrivalPeriod() (int, error) {
	if !r.HasMarked() {
		return 0, ErrNoMarkedState
	}
	if r.FirstMarked < r.Preperiod {
		return 0, fmt.Errorf("%w: marked step %d precedes loop start %d", ErrMisalignedCycle, r.FirstMarked, r.Preperiod)
	}
	k := len(r.MarkedSteps)
	if r.Period%k != 0 {
		return 0, fmt.Errorf("%w: %d marked steps do not divide period %d", ErrMisalignedCycle, k, r.Period)
	}
	q := r.Period / k
	for _, s := range r.MarkedSteps {
		if s%q != 0 {
			return 0, fmt.Errorf("%w: marked step %d is not a multiple of %d", ErrMisalignedCycle, s, q)
		}
	}

	return q, nil
}

// SimultaneousArrival returns the first step at which walkers started from
// every node in starts stand on marked nodes at the same time.
//
// Each start is analyzed with FindFirstMarkedAndPeriod in its own goroutine
// (bounded by WithConcurrency). The combination by LCM is only valid when each
// walker arrives at marked nodes at regular multiples of its own arrival
// period (see CycleReport.ArrivalPeriod); any walker breaking that assumption
// fails the call with ErrMisalignedCycle rather than yielding a wrong answer.
//
// The result is the smallest multiple of the combined period that is not
// before any walker's first marked step.
func SimultaneousArrival(g *Graph, tape Tape, starts []int, isMarked func(node int) bool, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	if len(starts) == 0 {
		return 0, ErrNoStarts
	}

	reports := make([]CycleReport, len(starts))
	eg, ctx := errgroup.WithContext(o.Ctx)
	if o.Concurrency > 0 {
		eg.SetLimit(o.Concurrency)
	}
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			r, err := FindFirstMarkedAndPeriod(g, tape, start, isMarked, WithContext(ctx), WithLogger(o.Logger))
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return 0, err
	}

	periods := make([]int, len(starts))
	firsts := make([]int, len(starts))
	for i, r := range reports {
		q, err := r.ArrivalPeriod()
		if err != nil {
			return 0, fmt.Errorf("SimultaneousArrival: start %q: %w", g.ID(starts[i]), err)
		}
		o.Logger.Debug("arrival period",
			zap.String("start", g.ID(starts[i])),
			zap.Int("period", q),
			zap.Int("first_marked", r.FirstMarked))
		periods[i], firsts[i] = q, r.FirstMarked
	}

	l, err := CombineByLCM(periods...)
	if err != nil {
		return 0, fmt.Errorf("SimultaneousArrival: %w", err)
	}
	latest := slices.Max(firsts)

	return (latest + l - 1) / l * l, nil
}
