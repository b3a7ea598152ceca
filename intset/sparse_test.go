package intset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tapewalk/intset"
	"github.com/katalvlaran/tapewalk/set"
)

func TestNewSparse_Validation(t *testing.T) {
	t.Parallel()

	_, err := intset.NewSparse(10, 0)
	assert.ErrorIs(t, err, intset.ErrInvalidRange)

	_, err = intset.NewSparse(0, 1<<33)
	assert.ErrorIs(t, err, intset.ErrRangeTooWide)

	s, err := intset.NewSparse(0, 1<<32)
	require.NoError(t, err)
	require.NoError(t, s.Add(1<<32-1))
	assert.True(t, s.Contains(1<<32-1))
}

// TestSparse_MatchesDense drives both representations with the same operations.
func TestSparse_MatchesDense(t *testing.T) {
	t.Parallel()

	const lo, hi = -64, 192
	dense := intset.MustNew(lo, hi)
	sparse, err := intset.NewSparse(lo, hi)
	require.NoError(t, err)

	for _, s := range []set.Set[int]{dense, sparse} {
		for x := lo; x < hi; x += 7 {
			require.NoError(t, s.Add(x))
		}
		for x := lo; x < hi; x += 21 {
			s.Remove(x)
		}
		assert.ErrorIs(t, s.Add(hi), intset.ErrOutOfRange)
		s.Remove(hi + 5)
	}

	assert.Equal(t, dense.Count(), sparse.Count())
	assert.Equal(t, set.Collect[int](dense), set.Collect[int](sparse))
	for x := lo - 10; x < hi+10; x++ {
		assert.Equal(t, dense.Contains(x), sparse.Contains(x), "x=%d", x)
	}

	back, err := sparse.Dense()
	require.NoError(t, err)
	assert.True(t, back.Equal(dense))

	sparse.Clear()
	assert.Zero(t, sparse.Count())
}

func TestSparse_Intersect(t *testing.T) {
	t.Parallel()

	a, _ := intset.NewSparse(0, 1_000_000)
	b, _ := intset.NewSparse(0, 1_000_000)
	require.NoError(t, set.AddAll[int](a, 5, 70_000, 999_999))
	require.NoError(t, set.AddAll[int](b, 70_000, 999_999, 12))

	require.NoError(t, a.Intersect(b))
	assert.Equal(t, []int{70_000, 999_999}, set.Collect[int](a))

	other, _ := intset.NewSparse(1, 1_000_000)
	assert.ErrorIs(t, a.IntersectInPlace(other), intset.ErrRangeMismatch)

	dense := intset.MustNew(0, 100_000)
	require.NoError(t, dense.Add(70_000))
	require.NoError(t, a.Intersect(dense))
	assert.Equal(t, []int{70_000}, set.Collect[int](a))
}
