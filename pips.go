package pips

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/pips/internal/compiler"
	"github.com/aretw0/pips/internal/presentation/grid"
	"github.com/aretw0/pips/internal/solver"
	"github.com/aretw0/pips/pkg/domain"
	"github.com/aretw0/pips/pkg/ports"
)

// Version is the release version. Builds may override it with
// -ldflags "-X github.com/aretw0/pips.Version=...".
var Version = "0.3.0"

// Solver is the high-level entry point for the pips library.
// It wraps the internal search engine and document parser and provides
// a simplified API for consumers.
type Solver struct {
	engine      *solver.Engine
	parser      ports.PuzzleParser
	logger      *slog.Logger
	parallelism int
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithParallelism sets the number of workers racing over the root
// branches of the search tree. Values below two keep the sequential,
// deterministic engine.
func WithParallelism(n int) Option {
	return func(s *Solver) {
		s.parallelism = n
	}
}

// WithParser injects a custom puzzle parser, bypassing the default
// JSON/YAML document parser.
func WithParser(p ports.PuzzleParser) Option {
	return func(s *Solver) {
		s.parser = p
	}
}

// New initializes a new Solver.
func New(opts ...Option) *Solver {
	s := &Solver{parallelism: 1}
	for _, opt := range opts {
		opt(s)
	}

	if s.parser == nil {
		s.parser = compiler.NewParser()
	}

	engineOpts := []solver.Option{
		solver.WithParallelism(s.parallelism),
	}
	if s.logger != nil {
		engineOpts = append(engineOpts, solver.WithLogger(s.logger))
	}
	s.engine = solver.New(engineOpts...)

	return s
}

// Solve searches for a tiling of the puzzle that satisfies every
// region. It returns domain.ErrNoSolution when the search space is
// exhausted, or ctx.Err() when the context ends first.
func (s *Solver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	return s.engine.Solve(ctx, p)
}

// SolveBytes parses a puzzle document and solves it.
func (s *Solver) SolveBytes(ctx context.Context, data []byte) (*domain.Solution, ports.Stats, error) {
	p, err := s.parser.Parse(data)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return s.engine.Solve(ctx, p)
}

// SolveFile loads a puzzle document from disk and solves it.
func (s *Solver) SolveFile(ctx context.Context, path string) (*domain.Solution, ports.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return s.SolveBytes(ctx, data)
}

// Parse decodes a puzzle document without solving it.
func (s *Solver) Parse(data []byte) (*domain.Puzzle, error) {
	return s.parser.Parse(data)
}

// FormatSolution renders a solved board as the standard text report:
// banner line, pip grid and numbered placement list.
func FormatSolution(board *domain.Board, sol *domain.Solution) string {
	return grid.Report(board, sol)
}
