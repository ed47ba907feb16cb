package dsl

import "github.com/aretw0/pips/pkg/domain"

// RegionBuilder provides a fluent API for configuring one region. Each
// constraint method seals the region and returns the puzzle builder, so
// a region carries exactly one constraint.
type RegionBuilder struct {
	builder *Builder
	cells   []domain.Cell
}

// Cell appends a position to the region.
func (r *RegionBuilder) Cell(row, col int) *RegionBuilder {
	r.cells = append(r.cells, domain.Cell{Row: row, Col: col})
	return r
}

// Equal requires every pip in the region to be identical.
func (r *RegionBuilder) Equal() *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintEqual})
}

// NotEqual requires the pips in the region to be pairwise distinct.
func (r *RegionBuilder) NotEqual() *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintNotEqual})
}

// GreaterThan requires every pip in the region to exceed n.
func (r *RegionBuilder) GreaterThan(n int) *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintGreaterThan, Value: n})
}

// LessThan requires every pip in the region to stay below n.
func (r *RegionBuilder) LessThan(n int) *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintLessThan, Value: n})
}

// Sum requires the pips in the region to add up to exactly n.
func (r *RegionBuilder) Sum(n int) *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintSum, Value: n})
}

// Open seals the region without a constraint. Useful for marking a
// visual group that the puzzle renders but never checks.
func (r *RegionBuilder) Open() *Builder {
	return r.seal(domain.Constraint{Kind: domain.ConstraintNone})
}

func (r *RegionBuilder) seal(c domain.Constraint) *Builder {
	r.builder.regions = append(r.builder.regions, domain.Region{
		Cells:      r.cells,
		Constraint: c,
	})
	return r.builder
}
