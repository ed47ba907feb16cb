// Package grid renders boards and solutions as fixed-width text. The
// layout is anchored at the smallest occupied row and column: invalid
// positions print as dots, valid but unfilled ones as blanks, filled
// ones as their pip value.
package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/pips/pkg/domain"
)

// Render draws the board with the solution's pip values, one text row per
// board row, cells separated by single spaces.
func Render(board *domain.Board, sol *domain.Solution) string {
	cells := board.Cells()
	minRow, maxRow := cells[0].Row, cells[0].Row
	minCol, maxCol := cells[0].Col, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}

	rows := make([][]string, maxRow-minRow+1)
	for i := range rows {
		rows[i] = make([]string, maxCol-minCol+1)
		for j := range rows[i] {
			rows[i][j] = "."
		}
	}
	for _, c := range cells {
		rows[c.Row-minRow][c.Col-minCol] = " "
	}
	if sol != nil {
		for cell, pips := range sol.Values() {
			if board.Contains(cell) {
				rows[cell.Row-minRow][cell.Col-minCol] = strconv.Itoa(pips)
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}

// Report produces the full human-readable solve result: a banner line,
// the rendered grid, and the numbered placement list.
func Report(board *domain.Board, sol *domain.Solution) string {
	var b strings.Builder
	b.WriteString("Solution found!\n\n")
	b.WriteString(Render(board, sol))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Placed %d dominoes:\n", len(sol.Placements))
	for i, p := range sol.Placements {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
