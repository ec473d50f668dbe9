package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

// solveScramble drives a fresh search over a seeded scramble and returns
// the solver in StatusFound.
func solveScramble(t *testing.T, steps int, seed int64) *solver.Solver {
	t.Helper()
	root, err := board.NewSolved(3)
	require.NoError(t, err)
	require.NoError(t, root.Scramble(steps, seed))

	sv := solver.New()
	require.NoError(t, sv.Start(root))
	res := drive(t, sv)
	require.True(t, res.Finished)

	return sv
}

// TestReplay_Contract: boards come in root→goal order, the root excluded,
// depths ascending 1..depth, ending on the goal.
func TestReplay_Contract(t *testing.T) {
	sv := solveScramble(t, 22, 23)

	moves, err := sv.Path()
	require.NoError(t, err)
	replay, err := sv.Replay()
	require.NoError(t, err)

	require.Len(t, replay, len(moves))
	for i, b := range replay {
		require.Equal(t, i+1, b.Depth(), "replay index %d", i)
		require.Equal(t, moves[i], b.LastMove(),
			"replay board %d must carry the move that produced it", i)
	}
	require.True(t, replay[len(replay)-1].IsGoal())
}

// TestReplay_ChainsThroughApply: each replay board is its predecessor
// plus that board's own move label.
func TestReplay_ChainsThroughApply(t *testing.T) {
	root, err := board.NewSolved(3)
	require.NoError(t, err)
	require.NoError(t, root.Scramble(18, 29))

	sv := solver.New()
	require.NoError(t, sv.Start(root))
	res := drive(t, sv)
	require.True(t, res.Finished)

	replay, err := sv.Replay()
	require.NoError(t, err)

	cur := root.Clone()
	for i, b := range replay {
		require.NoError(t, cur.Apply(b.LastMove()))
		require.Equal(t, b.Key(), cur.Key(), "replay diverged at index %d", i)
	}
}

func TestFormatMoves(t *testing.T) {
	require.Equal(t, "", solver.FormatMoves(nil))
	require.Equal(t, "Up", solver.FormatMoves([]board.Move{board.MoveUp}))
	require.Equal(t, "Left, Up, Up, Right",
		solver.FormatMoves([]board.Move{board.MoveLeft, board.MoveUp, board.MoveUp, board.MoveRight}))
}

func BenchmarkSolve3x3(b *testing.B) {
	root, err := board.NewSolved(3)
	if err != nil {
		b.Fatal(err)
	}
	if err = root.Scramble(30, 31); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sv := solver.New()
		if err = sv.Start(root); err != nil {
			b.Fatal(err)
		}
		for sv.Searching() {
			if _, err = sv.Step(); err != nil {
				b.Fatal(err)
			}
		}
		sv.Stop()
	}
}
