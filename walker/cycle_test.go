package walker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tapewalk/builder"
	"github.com/katalvlaran/tapewalk/walker"
)

// ghostNodes is the sample map for simultaneous walks: start nodes end in A,
// marked nodes end in Z.
var ghostNodes = []walker.Node{
	{ID: "11A", Left: "11B", Right: "XXX"},
	{ID: "11B", Left: "XXX", Right: "11Z"},
	{ID: "11Z", Left: "11B", Right: "XXX"},
	{ID: "22A", Left: "22B", Right: "XXX"},
	{ID: "22B", Left: "22C", Right: "22C"},
	{ID: "22C", Left: "22Z", Right: "22Z"},
	{ID: "22Z", Left: "22B", Right: "22B"},
	{ID: "XXX", Left: "XXX", Right: "XXX"},
}

func hasSuffix(s string) func(string) bool {
	return func(id string) bool { return strings.HasSuffix(id, s) }
}

type CycleSuite struct {
	suite.Suite
	ghosts *walker.Graph
	tape   walker.Tape
}

func (s *CycleSuite) SetupTest() {
	var err error
	s.ghosts, err = walker.BuildGraph(ghostNodes)
	s.Require().NoError(err)
	s.tape, err = walker.ParseTape("LR")
	s.Require().NoError(err)
}

// TestTwoStateCycle is the worked example: A→B→A under [L] never reaches C.
func (s *CycleSuite) TestTwoStateCycle() {
	require := require.New(s.T())
	g, err := walker.BuildGraph([]walker.Node{
		{ID: "A", Left: "B", Right: "C"},
		{ID: "B", Left: "A", Right: "A"},
		{ID: "C", Left: "C", Right: "C"},
	})
	require.NoError(err)

	r, err := walker.FindFirstMarkedAndPeriod(g, walker.Tape{walker.Left}, 0, g.Is("C"))
	require.NoError(err)
	require.False(r.HasMarked())
	require.Equal(-1, r.FirstMarked)
	require.Empty(r.MarkedSteps)
	require.Equal(0, r.Preperiod)
	require.Equal(2, r.Period)
	require.Equal(2, r.Steps)
}

// TestGhostReports checks pre-period/period arithmetic on the sample map.
func (s *CycleSuite) TestGhostReports() {
	require := require.New(s.T())
	endsZ := s.ghosts.Match(hasSuffix("Z"))

	a11, _ := s.ghosts.Index("11A")
	r, err := walker.FindFirstMarkedAndPeriod(s.ghosts, s.tape, a11, endsZ)
	require.NoError(err)
	require.Equal(walker.CycleReport{FirstMarked: 2, Period: 2, Preperiod: 1, Steps: 3, MarkedSteps: []int{2}}, r)

	a22, _ := s.ghosts.Index("22A")
	r, err = walker.FindFirstMarkedAndPeriod(s.ghosts, s.tape, a22, endsZ)
	require.NoError(err)
	require.Equal(walker.CycleReport{FirstMarked: 3, Period: 6, Preperiod: 1, Steps: 7, MarkedSteps: []int{3, 6}}, r)

	q, err := r.ArrivalPeriod()
	require.NoError(err)
	require.Equal(3, q)

	marked, err := walker.MarkedNodes(s.ghosts, s.tape, a22, r)
	require.NoError(err)
	require.Len(marked, 1)
	require.Equal("22Z", s.ghosts.ID(marked[0]))
}

func (s *CycleSuite) TestSimultaneousArrival() {
	require := require.New(s.T())
	starts := s.ghosts.Select(hasSuffix("A"))
	require.Len(starts, 2)

	got, err := walker.SimultaneousArrival(s.ghosts, s.tape, starts, s.ghosts.Match(hasSuffix("Z")))
	require.NoError(err)
	require.Equal(6, got)

	// bounded fan-out gives the same answer
	got, err = walker.SimultaneousArrival(s.ghosts, s.tape, starts, s.ghosts.Match(hasSuffix("Z")), walker.WithConcurrency(1))
	require.NoError(err)
	require.Equal(6, got)
}

func (s *CycleSuite) TestSimultaneousArrival_NoMarked() {
	starts := s.ghosts.Select(hasSuffix("A"))
	_, err := walker.SimultaneousArrival(s.ghosts, s.tape, starts, s.ghosts.Is("nowhere"))
	s.Require().ErrorIs(err, walker.ErrNoMarkedState)
}

func (s *CycleSuite) TestSimultaneousArrival_Validation() {
	require := require.New(s.T())
	_, err := walker.SimultaneousArrival(s.ghosts, s.tape, nil, s.ghosts.Is("11Z"))
	require.ErrorIs(err, walker.ErrNoStarts)
	_, err = walker.SimultaneousArrival(nil, s.tape, []int{0}, s.ghosts.Is("11Z"))
	require.ErrorIs(err, walker.ErrGraphNil)
	_, err = walker.SimultaneousArrival(s.ghosts, s.tape, []int{99}, s.ghosts.Is("11Z"))
	require.ErrorIs(err, walker.ErrStartNotFound)
	_, err = walker.SimultaneousArrival(s.ghosts, s.tape, []int{0}, nil)
	require.ErrorIs(err, walker.ErrNilPredicate)
}

// TestSimultaneousArrival_Logs verifies per-start debug entries reach the logger.
func (s *CycleSuite) TestSimultaneousArrival_Logs() {
	require := require.New(s.T())
	core, logs := observer.New(zapcore.DebugLevel)

	starts := s.ghosts.Select(hasSuffix("A"))
	_, err := walker.SimultaneousArrival(s.ghosts, s.tape, starts, s.ghosts.Match(hasSuffix("Z")),
		walker.WithLogger(zap.New(core)))
	require.NoError(err)
	require.Equal(2, logs.FilterMessage("cycle closed").Len())
	require.Equal(2, logs.FilterMessage("arrival period").Len())
	require.Equal(1, logs.FilterField(zap.String("start", "22A")).FilterMessage("arrival period").Len())
}

func TestCycleSuite(t *testing.T) {
	suite.Run(t, new(CycleSuite))
}

// TestFindFirstMarkedAndPeriod_Lollipop checks the tail/loop split on builder fixtures.
func TestFindFirstMarkedAndPeriod_Lollipop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tail, loop     int
		tape           string
		wantPre, wantP int
	}{
		{0, 1, "L", 0, 1},
		{0, 5, "L", 0, 5},
		{3, 4, "L", 3, 4},
		{3, 4, "LR", 3, 4},
		{2, 3, "LRL", 2, 3},
		{2, 3, "LR", 2, 6},
		{6, 1, "RRRR", 6, 4},
	}
	for _, tc := range tests {
		g, err := builder.BuildGraph(nil, builder.Lollipop(tc.tail, tc.loop))
		require.NoError(t, err)
		tape := mustTape(t, tc.tape)

		r, err := walker.FindFirstMarkedAndPeriod(g, tape, 0, func(int) bool { return false })
		require.NoError(t, err)
		assert.Equal(t, tc.wantPre, r.Preperiod, "tail=%d loop=%d tape=%s", tc.tail, tc.loop, tc.tape)
		assert.Equal(t, tc.wantP, r.Period, "tail=%d loop=%d tape=%s", tc.tail, tc.loop, tc.tape)
		assert.Equal(t, r.Preperiod+r.Period, r.Steps)
	}
}

// TestArrivalPeriod_Misaligned covers the cases where LCM combination is invalid.
func TestArrivalPeriod_Misaligned(t *testing.T) {
	t.Parallel()

	// tail t0, loop c0 c1 c2 under [L]: c0 at steps 1, 4, 7, …
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("n")}, builder.Lollipop(1, 3))
	require.NoError(t, err)
	tape := mustTape(t, "L")

	r, err := walker.FindFirstMarkedAndPeriod(g, tape, 0, g.Is("n1"))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, r.MarkedSteps)
	_, err = r.ArrivalPeriod()
	assert.ErrorIs(t, err, walker.ErrMisalignedCycle, "step 1 is not a multiple of period 3")

	// marking the tail node puts a marked step in the pre-period
	r, err = walker.FindFirstMarkedAndPeriod(g, tape, 0, g.Is("n0"))
	require.NoError(t, err)
	_, err = r.ArrivalPeriod()
	assert.ErrorIs(t, err, walker.ErrMisalignedCycle)

	// two marked nodes unevenly spaced in one loop: c0 (steps 1,4…) and c1 (steps 2,5…)
	r, err = walker.FindFirstMarkedAndPeriod(g, tape, 0, func(n int) bool { return n == 1 || n == 2 })
	require.NoError(t, err)
	_, err = r.ArrivalPeriod()
	assert.ErrorIs(t, err, walker.ErrMisalignedCycle)

	// c2 sits at steps 3, 6, … which lines up with period 3
	r, err = walker.FindFirstMarkedAndPeriod(g, tape, 0, g.Is("n3"))
	require.NoError(t, err)
	q, err := r.ArrivalPeriod()
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	_, err = walker.CycleReport{FirstMarked: -1}.ArrivalPeriod()
	assert.ErrorIs(t, err, walker.ErrNoMarkedState)
}

// TestSimultaneousArrival_Rings combines disjoint rings walked forward, one
// walker per ring.
func TestSimultaneousArrival_Rings(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Ring(2), builder.Ring(3), builder.Ring(5))
	require.NoError(t, err)
	starts := []int{0, 2, 5}
	marked := func(n int) bool { return n == 0 || n == 2 || n == 5 }

	got, err := walker.SimultaneousArrival(g, mustTape(t, "L"), starts, marked)
	require.NoError(t, err)
	// every start is itself marked at step 0
	assert.Equal(t, 0, got)

	// mark the node just before each start instead: first arrival n-1, period n
	before := func(n int) bool { return n == 1 || n == 4 || n == 9 }
	_, err = walker.SimultaneousArrival(g, mustTape(t, "L"), starts, before)
	assert.ErrorIs(t, err, walker.ErrMisalignedCycle)
}

func TestCombineByLCM(t *testing.T) {
	t.Parallel()

	got, err := walker.CombineByLCM(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	got, err = walker.CombineByLCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	_, err = walker.CombineByLCM()
	assert.ErrorIs(t, err, walker.ErrInvalidPeriod)
	_, err = walker.CombineByLCM(3, 0)
	assert.ErrorIs(t, err, walker.ErrInvalidPeriod)
}
