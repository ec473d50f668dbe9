// Package bfs_test contains unit tests for the exhaustive breadth-first
// oracle: exact depths, unreachable components, depth caps, cancellation.
package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/board"
)

func TestMinMoves_NilBoard(t *testing.T) {
	_, err := bfs.MinMoves(nil)
	require.ErrorIs(t, err, bfs.ErrNilBoard)
}

func TestMinMoves_SolvedRoot(t *testing.T) {
	root, err := board.NewSolved(3)
	require.NoError(t, err)

	n, err := bfs.MinMoves(root)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMinMoves_KnownDepths(t *testing.T) {
	// One blank move from the goal.
	root, err := board.New([]int{1, 0, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	n, err := bfs.MinMoves(root)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Two blank moves from the goal.
	root, err = board.New([]int{1, 2, 0, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	n, err = bfs.MinMoves(root)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestMinMoves_ScrambleUpperBound: a k-step walk can never need more
// than k moves back.
func TestMinMoves_ScrambleUpperBound(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		root, err := board.NewSolved(3)
		require.NoError(t, err)
		require.NoError(t, root.Scramble(12, seed))

		n, err := bfs.MinMoves(root)
		require.NoError(t, err)
		require.LessOrEqual(t, n, 12, "seed %d", seed)
	}
}

func TestMinMoves_Unreachable(t *testing.T) {
	// Odd permutation with the blank on its goal cell: the goal is not
	// in this 2×2 component.
	root, err := board.New([]int{0, 2, 1, 3})
	require.NoError(t, err)

	_, err = bfs.MinMoves(root)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestMinMoves_DepthCap(t *testing.T) {
	root, err := board.New([]int{1, 2, 0, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	// Cap below the true depth: the cut is reported, not silently absorbed.
	_, err = bfs.MinMoves(root, bfs.WithMaxDepth(1))
	require.ErrorIs(t, err, bfs.ErrDepthExceeded)

	// Cap at exactly the true depth: still found.
	n, err := bfs.MinMoves(root, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMinMoves_BadOption(t *testing.T) {
	root, err := board.NewSolved(3)
	require.NoError(t, err)

	_, err = bfs.MinMoves(root, bfs.WithMaxDepth(-3))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestMinMoves_Cancellation(t *testing.T) {
	root, err := board.NewSolved(3)
	require.NoError(t, err)
	require.NoError(t, root.Scramble(20, 9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled: the first dequeue must bail out

	_, err = bfs.MinMoves(root, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
