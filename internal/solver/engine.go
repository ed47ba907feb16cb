// Package solver implements the backtracking search that covers a board
// with dominoes under region constraints. The engine owns no puzzle state
// between calls; every Solve clones what it mutates, so one Engine can
// serve concurrent solves.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/pips/internal/logging"
	"github.com/aretw0/pips/pkg/domain"
	"github.com/aretw0/pips/pkg/ports"
)

// Engine is the backtracking solver. The zero value is not usable; build
// one with New.
type Engine struct {
	logger      *slog.Logger
	parallelism int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for search diagnostics. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelism splits the root candidate set across up to n workers
// racing for the first solution. Values below 2 keep the search
// sequential. Parallel runs keep every correctness guarantee but give up
// the "same first solution every run" promise: whichever branch finishes
// first wins.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:      logging.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve searches for the first complete placement set that covers the
// board and satisfies every region. It returns domain.ErrNoSolution when
// the space is exhausted, the context error when canceled, and a
// *domain.ConfigurationError before any search step if the puzzle is
// malformed. Stats are populated on every outcome.
func (e *Engine) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()

	if err := p.Validate(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	e.logger.Debug("solve started",
		"cells", p.Board.Size(),
		"regions", len(p.Regions),
		"dominoes", p.Inventory.Len(),
		"parallelism", e.parallelism,
	)

	// Every placement covers exactly two cells, so an odd board or an
	// inventory shorter than half the board can never be covered.
	if p.Board.Size()%2 != 0 || p.Inventory.Len() < p.Board.Size()/2 {
		stats := ports.Stats{Duration: time.Since(start)}
		e.logger.Debug("solve finished", "outcome", "no_solution", "nodes", stats.Nodes, "duration", stats.Duration)
		return nil, stats, domain.ErrNoSolution
	}

	var (
		solution *domain.Solution
		nodes    int64
		err      error
	)
	if e.parallelism > 1 {
		solution, nodes, err = e.solveParallel(ctx, p)
	} else {
		solution, nodes, err = e.solveSequential(ctx, p)
	}

	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	switch {
	case err == nil:
		e.logger.Debug("solve finished", "outcome", "solved", "placements", len(solution.Placements), "nodes", stats.Nodes, "duration", stats.Duration)
	case errors.Is(err, domain.ErrNoSolution):
		e.logger.Debug("solve finished", "outcome", "no_solution", "nodes", stats.Nodes, "duration", stats.Duration)
	default:
		e.logger.Debug("solve finished", "outcome", "aborted", "error", err, "nodes", stats.Nodes, "duration", stats.Duration)
	}
	return solution, stats, err
}

func (e *Engine) solveSequential(ctx context.Context, p *domain.Puzzle) (*domain.Solution, int64, error) {
	s := newSearch(p)
	found, err := s.run(ctx)
	if err != nil {
		return nil, s.nodes, err
	}
	if !found {
		return nil, s.nodes, domain.ErrNoSolution
	}
	return s.solution(), s.nodes, nil
}
