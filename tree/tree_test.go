package tree_test

import (
	"testing"

	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/tree"
	"github.com/katalvlaran/wavefront/wavefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference returns the sequentially swept matrix for side length n.
func reference(t *testing.T, n int) *matrix.Square {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	require.NoError(t, m.Seed())
	require.NoError(t, wavefront.Sequential(m))

	return m
}

// TestRun_MatchesSequential requires bit-identical output for power-of-two
// participant counts across several matrix sizes, including a length that
// does not divide evenly into blocks.
func TestRun_MatchesSequential(t *testing.T) {
	for _, n := range []int{4, 16, 33} {
		want := reference(t, n)
		for _, p := range []int{1, 2, 4} {
			got, err := tree.Run(n, p)
			require.NoError(t, err, "n=%d participants=%d", n, p)
			assert.True(t, want.Equal(got),
				"n=%d participants=%d must match the sequential sweep", n, p)
		}
	}
}

// TestRun_DeepCollapse exercises three merge rounds (8 participants) and
// a block partition with a short trailing block.
func TestRun_DeepCollapse(t *testing.T) {
	const n = 37
	want := reference(t, n)

	got, err := tree.Run(n, 8)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

// TestRun_EmptyTrailingBlock hits the case where ceil(n/P) blocks overrun
// the matrix and a trailing participant owns nothing.
func TestRun_EmptyTrailingBlock(t *testing.T) {
	// n=5, P=4: blocks of 2 start at 0,2,4,6 — the last is empty.
	const n = 5
	want := reference(t, n)

	got, err := tree.Run(n, 4)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

// TestRun_TrivialMatrix returns the 1×1 seed matrix unchanged.
func TestRun_TrivialMatrix(t *testing.T) {
	got, err := tree.Run(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	v, err := got.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestRun_ConfigErrors covers the rejection rules: bad length, count out
// of range, and the power-of-two constraint.
func TestRun_ConfigErrors(t *testing.T) {
	_, err := tree.Run(0, 1)
	assert.ErrorIs(t, err, wavefront.ErrNilMatrix)

	_, err = tree.Run(8, 0)
	assert.ErrorIs(t, err, tree.ErrParticipantRange)

	_, err = tree.Run(8, 9)
	assert.ErrorIs(t, err, tree.ErrParticipantRange)

	_, err = tree.Run(8, 3)
	assert.ErrorIs(t, err, tree.ErrParticipantCount)

	_, err = tree.Run(8, 6)
	assert.ErrorIs(t, err, tree.ErrParticipantCount)
}

// TestRun_Coverage asserts the terminal matrix is fully settled.
func TestRun_Coverage(t *testing.T) {
	got, err := tree.Run(12, 4)
	require.NoError(t, err)

	for i := 0; i < got.Len(); i++ {
		for j := 0; j < got.Len(); j++ {
			ok, err := got.Settled(i, j)
			require.NoError(t, err)
			assert.True(t, ok, "cell (%d,%d) left unsettled", i, j)
		}
	}
}

// TestRun_SeedSurvives checks global seeds reach the terminal matrix intact.
func TestRun_SeedSurvives(t *testing.T) {
	const n = 16
	got, err := tree.Run(n, 4)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		v, err := got.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, float64(i+1)/float64(n), v, "seed (%d,%d)", i, i)
	}
}

// TestRun_OnRound observes the halving schedule for eight participants.
func TestRun_OnRound(t *testing.T) {
	var rounds, actives []int

	_, err := tree.Run(32, 8, tree.WithOnRound(func(round, active int) {
		rounds = append(rounds, round)
		actives = append(actives, active)
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, rounds)
	assert.Equal(t, []int{8, 4, 2, 1}, actives)
}
