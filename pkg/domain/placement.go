package domain

import "fmt"

// Placement assigns one domino, with a chosen orientation, to a pair of
// adjacent cells: CellA receives PipsA and CellB receives PipsB. The pip
// pair is always a permutation of the domino's values.
type Placement struct {
	Domino Domino `json:"domino"`
	CellA  Cell   `json:"cell_a"`
	CellB  Cell   `json:"cell_b"`
	PipsA  int    `json:"pips_a"`
	PipsB  int    `json:"pips_b"`
}

func (p Placement) String() string {
	return fmt.Sprintf("%s=%d - %s=%d", p.CellA, p.PipsA, p.CellB, p.PipsB)
}

// Solution is the full outcome of a successful search: a placement list
// whose cells partition the board exactly, with no domino used twice.
type Solution struct {
	Placements []Placement `json:"placements"`
}

// Values derives the cell→pip mapping from the placements.
func (s *Solution) Values() map[Cell]int {
	values := make(map[Cell]int, len(s.Placements)*2)
	for _, p := range s.Placements {
		values[p.CellA] = p.PipsA
		values[p.CellB] = p.PipsB
	}
	return values
}

// Value returns the pip value occupying c, if any placement covers it.
func (s *Solution) Value(c Cell) (int, bool) {
	for _, p := range s.Placements {
		if p.CellA == c {
			return p.PipsA, true
		}
		if p.CellB == c {
			return p.PipsB, true
		}
	}
	return 0, false
}
