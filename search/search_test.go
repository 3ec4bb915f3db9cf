package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/search"
	"github.com/katalvlaran/patrol/simulate"
)

const lab = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// labLoops are the six squares that trap the guard in the canonical layout.
var labLoops = []grid.Position{
	{X: 3, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7},
	{X: 1, Y: 8}, {X: 3, Y: 8}, {X: 7, Y: 9},
}

// baseline parses lab and returns the template plus the visited squares.
func baseline(t testing.TB) (*grid.Grid, []grid.Position) {
	t.Helper()
	template := grid.MustParse(lab)
	res, err := simulate.Run(template.Clone())
	require.NoError(t, err)
	require.Equal(t, simulate.Terminated, res.Verdict)
	return template, search.CandidatesFrom(res)
}

// allSquares lists every square of g in row-major order.
func allSquares(g *grid.Grid) []grid.Position {
	var out []grid.Position
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out = append(out, grid.Position{X: x, Y: y})
		}
	}
	return out
}

// TestCount_Lab checks the canonical answer of six looping obstructions.
func TestCount_Lab(t *testing.T) {
	template, cands := baseline(t)
	require.Len(t, cands, 41)

	n, err := search.Count(template, cands)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	got, err := search.Positions(template, cands)
	require.NoError(t, err)
	assert.Equal(t, labLoops, got)
}

// TestCount_VisitedSquaresSuffice: widening the candidates to every square
// finds nothing new.
func TestCount_VisitedSquaresSuffice(t *testing.T) {
	template, _ := baseline(t)
	got, err := search.Positions(template, allSquares(template))
	require.NoError(t, err)
	assert.Equal(t, labLoops, got)
}

// TestCount_SkipsGuardStart: the start square is a candidate but never counts.
func TestCount_SkipsGuardStart(t *testing.T) {
	template, cands := baseline(t)
	start, ok := template.Guard()
	require.True(t, ok)
	require.Contains(t, cands, start.Pos)

	got, err := search.Positions(template, cands)
	require.NoError(t, err)
	assert.NotContains(t, got, start.Pos)

	n, err := search.Count(template, []grid.Position{start.Pos})
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestCount_OrderAndWorkersInvariant shuffles the candidates and varies the
// pool size; the count never changes.
func TestCount_OrderAndWorkersInvariant(t *testing.T) {
	template, cands := baseline(t)
	rng := rand.New(rand.NewSource(42))

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		shuffled := append([]grid.Position(nil), cands...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		n, err := search.Count(template, shuffled, search.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, 6, n, "workers=%d", workers)
	}
}

// TestCount_TemplateUntouched: the search works on clones only.
func TestCount_TemplateUntouched(t *testing.T) {
	template, cands := baseline(t)
	before := template.String()

	_, err := search.Count(template, cands, search.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, before, template.String())
}

// TestCount_Empty returns zero for no candidates.
func TestCount_Empty(t *testing.T) {
	n, err := search.Count(grid.MustParse(lab), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Nil(t, search.CandidatesFrom(nil))
}

// TestCount_Errors covers nil templates, bad options, exited guards and
// cancellation.
func TestCount_Errors(t *testing.T) {
	_, err := search.Count(nil, nil)
	assert.ErrorIs(t, err, search.ErrGridNil)

	_, err = search.Count(grid.MustParse(lab), nil, search.WithWorkers(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	gone := grid.MustParse("^")
	require.Equal(t, grid.Exited, gone.Step())
	_, err = search.Count(gone, nil)
	assert.ErrorIs(t, err, simulate.ErrNoGuard)

	template, cands := baseline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Positions(template, cands, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
