package dsl

import (
	"github.com/aretw0/pips/pkg/domain"
)

// Builder manages the puzzle construction.
type Builder struct {
	rows, cols int
	cells      []domain.Cell
	pieces     [][2]int
	regions    []domain.Region
}

// New creates a new puzzle builder.
func New() *Builder {
	return &Builder{}
}

// Rect declares a full rows x cols board. Combine with Cell to punch
// additional positions outside the rectangle.
func (b *Builder) Rect(rows, cols int) *Builder {
	b.rows, b.cols = rows, cols
	return b
}

// Cell adds a single playable position. Duplicates are tolerated; the
// board deduplicates on Build.
func (b *Builder) Cell(row, col int) *Builder {
	b.cells = append(b.cells, domain.Cell{Row: row, Col: col})
	return b
}

// Dominoes replaces the standard double-six inventory with the given
// pip pairs. Order within a pair does not matter.
func (b *Builder) Dominoes(pairs ...[2]int) *Builder {
	b.pieces = append(b.pieces, pairs...)
	return b
}

// Region opens a region over the given positions. The returned
// RegionBuilder fixes the constraint and hands control back to the
// puzzle builder.
func (b *Builder) Region(cells ...domain.Cell) *RegionBuilder {
	return &RegionBuilder{builder: b, cells: cells}
}

// Build compiles the declarations into a validated Puzzle.
func (b *Builder) Build() (*domain.Puzzle, error) {
	cells := b.cells
	if b.rows > 0 || b.cols > 0 {
		rect, err := domain.NewRectBoard(b.rows, b.cols)
		if err != nil {
			return nil, err
		}
		cells = append(rect.Cells(), cells...)
	}
	board, err := domain.NewBoard(cells)
	if err != nil {
		return nil, err
	}

	inventory := domain.StandardInventory()
	if len(b.pieces) > 0 {
		pieces := make([]domain.Domino, 0, len(b.pieces))
		for _, pair := range b.pieces {
			d, err := domain.NewDomino(pair[0], pair[1])
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, d)
		}
		if inventory, err = domain.NewInventory(pieces); err != nil {
			return nil, err
		}
	}

	puzzle := &domain.Puzzle{
		Board:     board,
		Regions:   b.regions,
		Inventory: inventory,
	}
	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}
