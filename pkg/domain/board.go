package domain

import "sort"

// Board is the set of valid cells of a puzzle plus the adjacency relation
// derived from that set. The shape may be a full rectangle, a rectangle
// with holes, an irregular outline, or several disconnected islands;
// adjacency is always computed from the valid set itself, never from a
// bounding rectangle.
type Board struct {
	valid map[Cell]struct{}
	cells []Cell // row-major
}

// neighborDeltas is the fixed probe order for adjacency: up, left, right,
// down. Candidate ordering in the search depends on it staying fixed.
var neighborDeltas = [4]Cell{{Row: -1}, {Col: -1}, {Col: 1}, {Row: 1}}

// NewBoard builds a board from an explicit cell list. Duplicate cells
// collapse into one. An empty list is a configuration fault.
func NewBoard(cells []Cell) (*Board, error) {
	valid := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		valid[c] = struct{}{}
	}
	if len(valid) == 0 {
		return nil, &ConfigurationError{Field: "board", Reason: "board has no valid cells"}
	}
	ordered := make([]Cell, 0, len(valid))
	for c := range valid {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })
	return &Board{valid: valid, cells: ordered}, nil
}

// NewRectBoard builds a full rows×cols board anchored at (0,0).
func NewRectBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ConfigurationError{Field: "board", Reason: "rows and cols must be positive"}
	}
	cells := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return NewBoard(cells)
}

// Contains reports whether c is a valid position on the board.
func (b *Board) Contains(c Cell) bool {
	_, ok := b.valid[c]
	return ok
}

// Size returns the number of valid cells.
func (b *Board) Size() int {
	return len(b.cells)
}

// Cells returns the valid cells in row-major order. The slice is a copy;
// callers may reorder it freely.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Neighbors returns the valid cells orthogonally adjacent to c, in the
// fixed probe order. Adjacency is symmetric by construction.
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborDeltas {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
