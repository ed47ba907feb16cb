package solver

import (
	"context"

	"github.com/aretw0/pips/pkg/domain"
)

// search is the mutable state of one depth-first run: the partial cell
// assignment, the placement trail, and the inventory claim set. Each run
// owns its state exclusively; backtracking undoes exactly what the frame
// did, on every exit path.
type search struct {
	board     *domain.Board
	regions   []domain.Region
	inventory *domain.Inventory

	// cells holds the canonical row-major order; regionsOf indexes the
	// regions slice by member cell.
	cells     []domain.Cell
	regionsOf map[domain.Cell][]int

	values     map[domain.Cell]int
	placements []domain.Placement
	nodes      int64
}

func newSearch(p *domain.Puzzle) *search {
	regionsOf := make(map[domain.Cell][]int)
	for i, r := range p.Regions {
		for _, c := range r.Cells {
			regionsOf[c] = append(regionsOf[c], i)
		}
	}
	return &search{
		board:     p.Board,
		regions:   p.Regions,
		inventory: p.Inventory.Clone(),
		cells:     p.Board.Cells(),
		regionsOf: regionsOf,
		values:    make(map[domain.Cell]int, p.Board.Size()),
	}
}

// orientation is one way to lay a domino across (cell, neighbor).
type orientation struct{ a, b int }

// orientationsOf lists the distinct orientations in fixed order: low pip
// on the selected cell first. Doubles have a single orientation.
func orientationsOf(d domain.Domino) []orientation {
	if d.Low == d.High {
		return []orientation{{d.Low, d.High}}
	}
	return []orientation{{d.Low, d.High}, {d.High, d.Low}}
}

// run is the recursive driver. It returns (true, nil) with the state
// holding a full solution, (false, nil) when this subtree is exhausted,
// and a non-nil error only when the search must abort as a whole
// (cancellation or a broken engine invariant).
func (s *search) run(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	cell, ok := s.firstUnfilled()
	if !ok {
		// Full cover. The partial checks were never slack for the
		// non-sum kinds, but sum regions need the terminal equality.
		return s.allSatisfied(), nil
	}

	// The selected cell is the first unfilled one in row-major order, so
	// its up and left neighbors are already filled; candidates only come
	// from the right and down probes. If every neighbor is filled the
	// loop generates nothing and the branch dies here: a lone cell can
	// never receive a domino half.
	for _, nb := range s.board.Neighbors(cell) {
		if _, filled := s.values[nb]; filled {
			continue
		}
		for _, d := range s.inventory.Available() {
			for _, o := range orientationsOf(d) {
				s.nodes++
				s.values[cell] = o.a
				s.values[nb] = o.b
				if s.stillSatisfiable(cell, nb) {
					found, err := s.commit(ctx, d, cell, nb, o)
					if err != nil {
						return false, err
					}
					if found {
						return true, nil
					}
				}
				delete(s.values, cell)
				delete(s.values, nb)
			}
		}
	}
	return false, nil
}

// commit claims the domino, records the placement, and recurses. On
// failure it restores the claim and the trail; the caller still owns the
// provisional cell values.
func (s *search) commit(ctx context.Context, d domain.Domino, cell, nb domain.Cell, o orientation) (bool, error) {
	if err := s.inventory.Use(d); err != nil {
		return false, err
	}
	s.placements = append(s.placements, domain.Placement{
		Domino: d,
		CellA:  cell,
		CellB:  nb,
		PipsA:  o.a,
		PipsB:  o.b,
	})

	found, err := s.run(ctx)
	if err != nil || found {
		return found, err
	}

	s.placements = s.placements[:len(s.placements)-1]
	if err := s.inventory.Release(d); err != nil {
		return false, err
	}
	return false, nil
}

// firstUnfilled returns the first cell in canonical order with no value.
func (s *search) firstUnfilled() (domain.Cell, bool) {
	for _, c := range s.cells {
		if _, filled := s.values[c]; !filled {
			return c, true
		}
	}
	return domain.Cell{}, false
}

// stillSatisfiable checks every region touching either cell of a
// provisional placement. A region holding both cells is checked once.
func (s *search) stillSatisfiable(a, b domain.Cell) bool {
	for _, i := range s.regionsOf[a] {
		if !s.regions[i].Satisfiable(s.values) {
			return false
		}
	}
	for _, i := range s.regionsOf[b] {
		if s.regions[i].Contains(a) {
			continue // already checked through a
		}
		if !s.regions[i].Satisfiable(s.values) {
			return false
		}
	}
	return true
}

// allSatisfied is the terminal check over every region.
func (s *search) allSatisfied() bool {
	for i := range s.regions {
		if !s.regions[i].Satisfied(s.values) {
			return false
		}
	}
	return true
}

// solution copies the placement trail out of the search state.
func (s *search) solution() *domain.Solution {
	placements := make([]domain.Placement, len(s.placements))
	copy(placements, s.placements)
	return &domain.Solution{Placements: placements}
}
