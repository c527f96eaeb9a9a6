package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blondsend/minesweeper-solver/internal/mines"
)

const u = mines.Unknown

func snap(w, h, mineCount int, cells ...mines.CellState) *Snapshot {
	return &Snapshot{Width: w, Height: h, MineCount: mineCount, Cells: cells}
}

func TestSolveSingleRowAllSafe(t *testing.T) {
	t.Parallel()

	// [0 # #] with no mines at all: the zero proves its neighbor, the
	// exhausted mine budget proves the far cell.
	res, err := New().Solve(snap(3, 1, 0, 0, u, u))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, res.Safe)
	assert.Empty(t, res.Mines)
	assert.False(t, res.Approximate)
}

func TestSolveCornerMine(t *testing.T) {
	t.Parallel()

	// a corner 1 with a single hidden neighbor and one mine left
	res, err := New().Solve(snap(2, 1, 1, 1, u))
	require.NoError(t, err)

	assert.Empty(t, res.Safe)
	assert.Equal(t, []int{1}, res.Mines)
}

func TestSolveOverlappingConstraints(t *testing.T) {
	t.Parallel()

	/*
	 * 0 0 1
	 * 1 2 F
	 * A B C
	 *
	 * The 1 at 0:1 gives {A,B}=1, the 2 at 1:1 (one flag accounted)
	 * gives {A,B,C}=1. Exactly two assignments survive: a mine at A
	 * or a mine at B, never at C.
	 */
	res, err := New().Solve(snap(3, 3, 2,
		0, 0, 1,
		1, 2, mines.Flagged,
		u, u, u,
	))
	require.NoError(t, err)

	assert.Empty(t, res.Safe)
	assert.Empty(t, res.Mines)
	assert.InDelta(t, 0.5, res.Probs[6], 1e-9)
	assert.InDelta(t, 0.5, res.Probs[7], 1e-9)
	assert.InDelta(t, 0.0, res.Probs[8], 1e-9)

	// C is the sure reveal
	assert.Equal(t, []Action{{ActionReveal, 8}}, res.Actions())
}

func TestSolveUniformComponent(t *testing.T) {
	t.Parallel()

	// a 1 in the corner of a 2x2 board constrains all three hidden
	// cells equally
	res, err := New().Solve(snap(2, 2, 1, 1, u, u, u))
	require.NoError(t, err)

	assert.Empty(t, res.Safe)
	assert.Empty(t, res.Mines)
	for _, i := range []int{1, 2, 3} {
		assert.InDelta(t, 1.0/3.0, res.Probs[i], 1e-9)
	}

	// tie broken by lowest row-major index
	assert.Equal(t, []Action{{ActionReveal, 1}}, res.Actions())
}

func TestSolveFreeCells(t *testing.T) {
	t.Parallel()

	/*
	 * 1 # #
	 * # # #
	 * # # #
	 *
	 * Two mines total. The corner 1 constrains its three neighbors
	 * (1/3 each, one expected mine); the leftover budget spreads over
	 * the five unconstrained cells.
	 */
	res, err := New().Solve(snap(3, 3, 2,
		1, u, u,
		u, u, u,
		u, u, u,
	))
	require.NoError(t, err)

	for _, i := range []int{1, 3, 4} {
		assert.InDelta(t, 1.0/3.0, res.Probs[i], 1e-9)
	}
	for _, i := range []int{2, 5, 6, 7, 8} {
		assert.InDelta(t, 0.2, res.Probs[i], 1e-9)
	}
}

func TestSolveProbabilitiesInRange(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 0))
	params := &mines.GameParams{Width: 9, Height: 9, MineCount: 20}
	g, err := mines.NewGame(params, 4, 4, r)
	require.NoError(t, err)

	res, err := New().Solve(snap(9, 9, 20, g.PlayerGrid...))
	require.NoError(t, err)

	for i, p := range res.Probs {
		assert.GreaterOrEqual(t, p, 0.0, "cell %d", i)
		assert.LessOrEqual(t, p, 1.0, "cell %d", i)
	}
}

func TestSolveIdempotent(t *testing.T) {
	t.Parallel()

	s := snap(3, 3, 2,
		1, u, u,
		u, u, u,
		u, u, u,
	)
	first, err := New().Solve(s)
	require.NoError(t, err)
	second, err := New().Solve(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Actions(), second.Actions())
}

func TestSolveMalformedSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"short grid", snap(3, 3, 1, u, u)},
		{"too many flags", snap(2, 1, 1, mines.Flagged, mines.Flagged)},
		{"count below flags", snap(3, 1, 2, mines.Flagged, 0, u)},
		{"count above neighbors", snap(2, 1, 1, 2, u)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New().Solve(test.snap)
			require.Error(t, err)
			assert.ErrorAs(t, err, &SnapshotError{})
		})
	}
}

func TestSolveContradiction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap *Snapshot
	}{
		// a 0 and a 1 both constraining the same lone hidden cell
		{"safe and mine", snap(3, 1, 1, 0, u, 1)},
		// a proven mine on a board claiming zero mines
		{"budget exceeded", snap(2, 1, 0, 1, u)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New().Solve(test.snap)
			require.Error(t, err)
			assert.ErrorAs(t, err, &ContradictionError{})
		})
	}
}

func TestSolveAboveCapFallsBack(t *testing.T) {
	t.Parallel()

	s := &Solver{Cap: 2}
	res, err := s.Solve(snap(2, 2, 1, 1, u, u, u))
	require.NoError(t, err)

	assert.True(t, res.Approximate)
	// density prior: one mine over three hidden cells
	for _, i := range []int{1, 2, 3} {
		assert.InDelta(t, 1.0/3.0, res.Probs[i], 1e-9)
	}
}

// Every cell the solver proves safe must be clear on the true layout,
// and every proven mine must be real, across whole self-played games.
func TestSolveSoundness(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	params := &mines.GameParams{Width: 9, Height: 9, MineCount: 12}
	for seed := range uint64(10) {
		r := rand.New(rand.NewPCG(seed, 1))
		g, err := mines.NewGame(params, 4, 4, r)
		require.NoError(t, err)

		sv := New()
		for !g.Dead && !g.Won {
			res, err := sv.Solve(snap(
				params.Width, params.Height, params.MineCount,
				g.PlayerGrid...,
			))
			require.NoError(t, err)

			for _, i := range res.Safe {
				assert.False(t, g.Grid[i], "seed %d: cell %d proven safe holds a mine", seed, i)
			}
			for _, i := range res.Mines {
				assert.True(t, g.Grid[i], "seed %d: cell %d proven mine is clear", seed, i)
			}

			acts := res.Actions()
			if len(acts) == 0 {
				break
			}
			for _, a := range acts {
				x, y := a.Cell%params.Width, a.Cell/params.Width
				if a.Kind == ActionFlag {
					g.FlagCell(x, y)
				} else {
					g.OpenCell(x, y)
				}
				if g.Dead || g.Won {
					break
				}
			}
			// dying is only acceptable on a probabilistic guess
			if g.Dead {
				assert.Empty(t, res.Safe, "seed %d: died on a certain move", seed)
				break
			}
		}
	}
}
