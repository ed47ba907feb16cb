package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/pips/pkg/domain"
)

// rootCandidate is one first-level branch of the search tree: a concrete
// placement proposal for the first selectable cell.
type rootCandidate struct {
	domino domain.Domino
	cell   domain.Cell
	nb     domain.Cell
	o      orientation
}

// rootCandidates enumerates the branches for cell in the same fixed order
// the sequential search would try them.
func (s *search) rootCandidates(cell domain.Cell) []rootCandidate {
	var out []rootCandidate
	for _, nb := range s.board.Neighbors(cell) {
		if _, filled := s.values[nb]; filled {
			continue
		}
		for _, d := range s.inventory.Available() {
			for _, o := range orientationsOf(d) {
				out = append(out, rootCandidate{domino: d, cell: cell, nb: nb, o: o})
			}
		}
	}
	return out
}

// solveParallel races the root branches across a bounded worker set; the
// first branch to complete a solution cancels the rest. Every worker owns
// a full clone of the search state, so branches never contend on the
// inventory or the cell assignment.
func (e *Engine) solveParallel(parent context.Context, p *domain.Puzzle) (*domain.Solution, int64, error) {
	root := newSearch(p)
	first, ok := root.firstUnfilled()
	if !ok {
		return nil, 0, domain.ErrNoSolution
	}
	candidates := root.rootCandidates(first)
	if len(candidates) == 0 {
		return nil, 0, domain.ErrNoSolution
	}

	workers := e.parallelism
	if workers > len(candidates) {
		workers = len(candidates)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var (
		totalNodes atomic.Int64
		once       sync.Once
		winner     *domain.Solution
	)

	tasks := make(chan rootCandidate)
	g.Go(func() error {
		defer close(tasks)
		for _, c := range candidates {
			select {
			case tasks <- c:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for c := range tasks {
				sol, nodes, err := runBranch(gctx, p, c)
				totalNodes.Add(nodes)
				switch {
				case err == nil:
					once.Do(func() { winner = sol })
					cancel()
					return nil
				case errors.Is(err, domain.ErrNoSolution),
					errors.Is(err, context.Canceled),
					errors.Is(err, context.DeadlineExceeded):
					// Dead branch, or another worker won the race.
					continue
				default:
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, totalNodes.Load(), err
	}
	if winner != nil {
		return winner, totalNodes.Load(), nil
	}
	if err := parent.Err(); err != nil {
		return nil, totalNodes.Load(), err
	}
	return nil, totalNodes.Load(), domain.ErrNoSolution
}

// runBranch applies one root candidate to a fresh search state and runs
// the sequential algorithm below it.
func runBranch(ctx context.Context, p *domain.Puzzle, c rootCandidate) (*domain.Solution, int64, error) {
	s := newSearch(p)
	s.nodes++
	s.values[c.cell] = c.o.a
	s.values[c.nb] = c.o.b
	if !s.stillSatisfiable(c.cell, c.nb) {
		return nil, s.nodes, domain.ErrNoSolution
	}
	found, err := s.commit(ctx, c.domino, c.cell, c.nb, c.o)
	if err != nil {
		return nil, s.nodes, err
	}
	if !found {
		return nil, s.nodes, domain.ErrNoSolution
	}
	return s.solution(), s.nodes, nil
}
