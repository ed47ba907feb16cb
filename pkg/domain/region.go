package domain

// Region is a fixed set of board cells bound to one constraint. Regions
// normally partition the board, but the model does not forbid overlap:
// the search evaluates every region independently, so a cell shared by
// two regions simply answers to both.
type Region struct {
	Cells      []Cell     `json:"positions" yaml:"positions"`
	Constraint Constraint `json:"constraint" yaml:"constraint"`
}

// Satisfiable reports whether the region's constraint can still hold
// under the partial assignment in values (filled cells only).
func (r *Region) Satisfiable(values map[Cell]int) bool {
	filled := make([]int, 0, len(r.Cells))
	unfilled := 0
	for _, c := range r.Cells {
		if v, ok := values[c]; ok {
			filled = append(filled, v)
		} else {
			unfilled++
		}
	}
	return r.Constraint.Satisfiable(filled, unfilled)
}

// Satisfied reports whether the constraint holds under a complete
// assignment. A region cell with no value fails the check.
func (r *Region) Satisfied(values map[Cell]int) bool {
	vals := make([]int, 0, len(r.Cells))
	for _, c := range r.Cells {
		v, ok := values[c]
		if !ok {
			return false
		}
		vals = append(vals, v)
	}
	return r.Constraint.Satisfied(vals)
}

// Contains reports whether c is one of the region's cells.
func (r *Region) Contains(c Cell) bool {
	for _, have := range r.Cells {
		if have == c {
			return true
		}
	}
	return false
}
