package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pips/internal/solver"
	"github.com/aretw0/pips/pkg/domain"
)

// scenarioA is the 2x4 worked example: one region per horizontal cell
// pair, each with a different constraint kind.
func scenarioA(t *testing.T) *domain.Puzzle {
	t.Helper()
	board, err := domain.NewRectBoard(2, 4)
	require.NoError(t, err)
	return &domain.Puzzle{
		Board: board,
		Regions: []domain.Region{
			{Cells: []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: domain.Constraint{Kind: domain.ConstraintEqual}},
			{Cells: []domain.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: domain.Constraint{Kind: domain.ConstraintSum, Value: 5}},
			{Cells: []domain.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, Constraint: domain.Constraint{Kind: domain.ConstraintNotEqual}},
			{Cells: []domain.Cell{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, Constraint: domain.Constraint{Kind: domain.ConstraintLessThan, Value: 4}},
		},
		Inventory: domain.StandardInventory(),
	}
}

// requireValidSolution checks the exact-cover and inventory invariants
// plus every region's terminal constraint.
func requireValidSolution(t *testing.T, p *domain.Puzzle, sol *domain.Solution) {
	t.Helper()
	require.NotNil(t, sol)

	covered := make(map[domain.Cell]int)
	usedDominoes := make(map[domain.Domino]int)
	for _, pl := range sol.Placements {
		covered[pl.CellA]++
		covered[pl.CellB]++
		usedDominoes[pl.Domino]++
		assert.True(t, p.Board.Contains(pl.CellA), "placement cell %s off board", pl.CellA)
		assert.True(t, p.Board.Contains(pl.CellB), "placement cell %s off board", pl.CellB)
	}
	for _, c := range p.Board.Cells() {
		assert.Equal(t, 1, covered[c], "cell %s covered %d times", c, covered[c])
	}
	assert.Len(t, covered, p.Board.Size())
	for d, n := range usedDominoes {
		assert.Equal(t, 1, n, "domino %s used %d times", d, n)
	}

	values := sol.Values()
	for i := range p.Regions {
		assert.True(t, p.Regions[i].Satisfied(values), "region %d not satisfied", i)
	}
}

func TestEngine_SolvesRectangularPuzzle(t *testing.T) {
	p := scenarioA(t)
	sol, stats, err := solver.New().Solve(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, sol.Placements, 4)
	requireValidSolution(t, p, sol)
	assert.Positive(t, stats.Nodes)
}

func TestEngine_Deterministic(t *testing.T) {
	first, _, err := solver.New().Solve(context.Background(), scenarioA(t))
	require.NoError(t, err)
	second, _, err := solver.New().Solve(context.Background(), scenarioA(t))
	require.NoError(t, err)
	assert.Equal(t, first.Placements, second.Placements)
}

func TestEngine_LShapedBoard(t *testing.T) {
	// A vertical arm of four cells plus a horizontal foot of two. No
	// regions at all: this exercises pure adjacency-driven tiling.
	board, err := domain.NewBoard([]domain.Cell{
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0},
		{Row: 3, Col: 0},
		{Row: 3, Col: 1},
		{Row: 3, Col: 2},
	})
	require.NoError(t, err)
	p := &domain.Puzzle{Board: board, Inventory: domain.StandardInventory()}

	sol, _, err := solver.New().Solve(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, sol.Placements, 3)
	requireValidSolution(t, p, sol)
}

func TestEngine_IsolatedCell(t *testing.T) {
	t.Run("Even Board With Unreachable Cells", func(t *testing.T) {
		// (5,5) and (7,7) have no neighbors; the dead-branch rule has to
		// fail the search, not the parity shortcut.
		board, err := domain.NewBoard([]domain.Cell{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 5, Col: 5}, {Row: 7, Col: 7},
		})
		require.NoError(t, err)
		p := &domain.Puzzle{Board: board, Inventory: domain.StandardInventory()}

		sol, stats, err := solver.New().Solve(context.Background(), p)
		assert.Nil(t, sol)
		assert.ErrorIs(t, err, domain.ErrNoSolution)
		assert.Positive(t, stats.Nodes, "the engine should have tried the reachable pair first")
	})

	t.Run("Single Cell Board", func(t *testing.T) {
		board, err := domain.NewBoard([]domain.Cell{{Row: 0, Col: 0}})
		require.NoError(t, err)
		p := &domain.Puzzle{Board: board, Inventory: domain.StandardInventory()}

		sol, _, err := solver.New().Solve(context.Background(), p)
		assert.Nil(t, sol)
		assert.ErrorIs(t, err, domain.ErrNoSolution)
	})
}

func TestEngine_UnsatisfiableSum(t *testing.T) {
	board, err := domain.NewRectBoard(1, 2)
	require.NoError(t, err)
	p := &domain.Puzzle{
		Board: board,
		Regions: []domain.Region{
			{Cells: []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: domain.Constraint{Kind: domain.ConstraintSum, Value: 20}},
		},
		Inventory: domain.StandardInventory(),
	}

	sol, stats, err := solver.New().Solve(context.Background(), p)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domain.ErrNoSolution)
	assert.Positive(t, stats.Nodes)
}

func TestEngine_MalformedPuzzle(t *testing.T) {
	board, err := domain.NewRectBoard(2, 2)
	require.NoError(t, err)
	p := &domain.Puzzle{
		Board: board,
		Regions: []domain.Region{
			{Cells: []domain.Cell{{Row: 9, Col: 9}}, Constraint: domain.Constraint{Kind: domain.ConstraintNone}},
		},
		Inventory: domain.StandardInventory(),
	}

	sol, stats, err := solver.New().Solve(context.Background(), p)
	assert.Nil(t, sol)
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "regions[0]", cfgErr.Field)
	assert.Zero(t, stats.Nodes, "no search step may run on a malformed puzzle")
}

func TestEngine_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, _, err := solver.New().Solve(ctx, scenarioA(t))
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrNoSolution)
}

func TestEngine_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, _, err := solver.New().Solve(ctx, scenarioA(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_CustomInventory(t *testing.T) {
	t.Run("Restricted Set Covers Board", func(t *testing.T) {
		board, err := domain.NewRectBoard(2, 2)
		require.NoError(t, err)
		inv, err := domain.NewInventory([]domain.Domino{
			{Low: 1, High: 1},
			{Low: 2, High: 3},
		})
		require.NoError(t, err)
		p := &domain.Puzzle{Board: board, Inventory: inv}

		sol, _, err := solver.New().Solve(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, sol.Placements, 2)
		requireValidSolution(t, p, sol)
	})

	t.Run("Too Few Dominoes", func(t *testing.T) {
		board, err := domain.NewRectBoard(2, 2)
		require.NoError(t, err)
		inv, err := domain.NewInventory([]domain.Domino{{Low: 0, High: 0}})
		require.NoError(t, err)
		p := &domain.Puzzle{Board: board, Inventory: inv}

		_, _, err = solver.New().Solve(context.Background(), p)
		assert.ErrorIs(t, err, domain.ErrNoSolution)
	})
}

func TestEngine_OverlappingRegions(t *testing.T) {
	board, err := domain.NewRectBoard(1, 2)
	require.NoError(t, err)
	pair := []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	t.Run("Contradictory Overlap Reports No Solution", func(t *testing.T) {
		p := &domain.Puzzle{
			Board: board,
			Regions: []domain.Region{
				{Cells: pair, Constraint: domain.Constraint{Kind: domain.ConstraintEqual}},
				{Cells: pair, Constraint: domain.Constraint{Kind: domain.ConstraintNotEqual}},
			},
			Inventory: domain.StandardInventory(),
		}
		_, _, err := solver.New().Solve(context.Background(), p)
		assert.ErrorIs(t, err, domain.ErrNoSolution)
	})

	t.Run("Compatible Overlap Solves", func(t *testing.T) {
		p := &domain.Puzzle{
			Board: board,
			Regions: []domain.Region{
				{Cells: pair, Constraint: domain.Constraint{Kind: domain.ConstraintEqual}},
				{Cells: pair, Constraint: domain.Constraint{Kind: domain.ConstraintSum, Value: 4}},
			},
			Inventory: domain.StandardInventory(),
		}
		sol, _, err := solver.New().Solve(context.Background(), p)
		require.NoError(t, err)
		requireValidSolution(t, p, sol)
		values := sol.Values()
		assert.Equal(t, 2, values[domain.Cell{Row: 0, Col: 0}])
		assert.Equal(t, 2, values[domain.Cell{Row: 0, Col: 1}])
	})
}

func TestEngine_Parallel(t *testing.T) {
	p := scenarioA(t)
	sol, stats, err := solver.New(solver.WithParallelism(4)).Solve(context.Background(), p)
	require.NoError(t, err)
	requireValidSolution(t, p, sol)
	assert.Positive(t, stats.Nodes)

	t.Run("No Solution", func(t *testing.T) {
		board, err := domain.NewRectBoard(1, 2)
		require.NoError(t, err)
		puzzle := &domain.Puzzle{
			Board: board,
			Regions: []domain.Region{
				{Cells: board.Cells(), Constraint: domain.Constraint{Kind: domain.ConstraintSum, Value: 20}},
			},
			Inventory: domain.StandardInventory(),
		}
		_, _, err = solver.New(solver.WithParallelism(4)).Solve(context.Background(), puzzle)
		assert.ErrorIs(t, err, domain.ErrNoSolution)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := solver.New(solver.WithParallelism(4)).Solve(ctx, p)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
