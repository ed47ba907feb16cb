package domain

import "fmt"

// ConstraintKind enumerates the closed set of region constraint variants.
// The set is fixed; evaluation switches over it exhaustively so a missing
// case is a compile-time smell rather than a runtime surprise.
type ConstraintKind int

const (
	// ConstraintNone accepts any assignment.
	ConstraintNone ConstraintKind = iota
	// ConstraintEqual requires every pip value in the region to be identical.
	ConstraintEqual
	// ConstraintNotEqual requires all pip values in the region to be
	// pairwise distinct.
	ConstraintNotEqual
	// ConstraintGreaterThan requires every pip value to exceed Value.
	ConstraintGreaterThan
	// ConstraintLessThan requires every pip value to be below Value.
	ConstraintLessThan
	// ConstraintSum requires the pip values to add up to exactly Value.
	ConstraintSum
)

// Constraint is one arithmetic condition over the pip values that end up
// in a region. Value carries the threshold or target for the kinds that
// need one and is ignored otherwise.
type Constraint struct {
	Kind  ConstraintKind `json:"kind" yaml:"kind"`
	Value int            `json:"value,omitempty" yaml:"value,omitempty"`
}

// NeedsValue reports whether the kind requires an explicit threshold or
// target in the puzzle definition.
func (k ConstraintKind) NeedsValue() bool {
	switch k {
	case ConstraintGreaterThan, ConstraintLessThan, ConstraintSum:
		return true
	}
	return false
}

func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintNone:
		return "no constraint"
	case ConstraintEqual:
		return "="
	case ConstraintNotEqual:
		return "!="
	case ConstraintGreaterThan:
		return fmt.Sprintf(">%d", c.Value)
	case ConstraintLessThan:
		return fmt.Sprintf("<%d", c.Value)
	case ConstraintSum:
		return fmt.Sprintf("sum=%d", c.Value)
	}
	return fmt.Sprintf("constraint(%d)", int(c.Kind))
}

// Satisfiable reports whether the constraint can still hold given the pip
// values filled in so far and the number of region cells still empty. It
// is the partial check the search runs after every single-cell assignment,
// so violations surface as early as possible.
func (c Constraint) Satisfiable(filled []int, unfilled int) bool {
	switch c.Kind {
	case ConstraintNone:
		return true
	case ConstraintEqual:
		for i := 1; i < len(filled); i++ {
			if filled[i] != filled[0] {
				return false
			}
		}
		return true
	case ConstraintNotEqual:
		// Regions are constant-size, so a pairwise scan beats any
		// distinct-count machinery.
		for i := 1; i < len(filled); i++ {
			for j := 0; j < i; j++ {
				if filled[i] == filled[j] {
					return false
				}
			}
		}
		return true
	case ConstraintGreaterThan:
		for _, v := range filled {
			if v <= c.Value {
				return false
			}
		}
		return true
	case ConstraintLessThan:
		for _, v := range filled {
			if v >= c.Value {
				return false
			}
		}
		return true
	case ConstraintSum:
		sum := 0
		for _, v := range filled {
			sum += v
		}
		// The running sum must not overshoot, and the empty cells must
		// still be able to bridge the gap at MaxPip each. This bounds
		// pruning is what keeps sum regions tractable.
		if sum > c.Value {
			return false
		}
		return sum+unfilled*MaxPip >= c.Value
	}
	return false
}

// Satisfied is the terminal check, evaluated once every cell of the region
// holds a value. With no cells left unfilled the partial check collapses to
// the exact condition: for ConstraintSum the reachability bounds meet at
// sum == Value, and the remaining kinds were never slack to begin with.
func (c Constraint) Satisfied(values []int) bool {
	return c.Satisfiable(values, 0)
}
