package tui

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/pips/internal/presentation/grid"
	"github.com/aretw0/pips/pkg/domain"
)

// pipPalette maps each pip value to a color, low values cool and high
// values warm, so adjacent domino halves stay readable.
var pipPalette = [7]string{
	"#94a3b8", // 0
	"#38bdf8", // 1
	"#34d399", // 2
	"#a3e635", // 3
	"#facc15", // 4
	"#fb923c", // 5
	"#f87171", // 6
}

// ColorizeGrid re-renders the plain grid with per-pip colors. The text
// layout is identical to grid.Render; only SGR sequences are added, so
// piping the output through a color-stripping pager keeps it aligned.
func ColorizeGrid(board *domain.Board, sol *domain.Solution) string {
	p := termenv.ColorProfile()
	plain := grid.Render(board, sol)

	var b strings.Builder
	for _, r := range plain {
		if r >= '0' && r <= '6' {
			pip, _ := strconv.Atoi(string(r))
			b.WriteString(termenv.String(string(r)).Foreground(p.Color(pipPalette[pip])).Bold().String())
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
