package domain

import "fmt"

// Puzzle bundles everything the solver needs: the board shape, the region
// constraints, and the domino inventory to draw from. Once constructed it
// is treated as immutable; the search engine clones the mutable pieces it
// works on.
type Puzzle struct {
	Board     *Board
	Regions   []Region
	Inventory *Inventory
}

// Validate re-runs the configuration checks: a usable board, every region
// non-empty with its cells on the board, and thresholds present where the
// constraint kind demands one. The compiler performs the same checks while
// parsing; Validate guards puzzles assembled in code.
func (p *Puzzle) Validate() error {
	if p.Board == nil || p.Board.Size() == 0 {
		return &ConfigurationError{Field: "board", Reason: "board has no valid cells"}
	}
	if p.Inventory == nil || p.Inventory.Len() == 0 {
		return &ConfigurationError{Field: "dominoes", Reason: "inventory has no dominoes"}
	}
	for i := range p.Regions {
		r := &p.Regions[i]
		field := fmt.Sprintf("regions[%d]", i)
		if len(r.Cells) == 0 {
			return &ConfigurationError{Field: field, Reason: "region has no positions"}
		}
		for _, c := range r.Cells {
			if !p.Board.Contains(c) {
				return &ConfigurationError{
					Field:  field,
					Reason: fmt.Sprintf("position %s is outside the board", c),
				}
			}
		}
		switch r.Constraint.Kind {
		case ConstraintNone, ConstraintEqual, ConstraintNotEqual,
			ConstraintGreaterThan, ConstraintLessThan, ConstraintSum:
		default:
			return &ConfigurationError{
				Field:  field,
				Reason: fmt.Sprintf("unknown constraint kind %d", int(r.Constraint.Kind)),
			}
		}
	}
	return nil
}
