package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Pips.
func PrintBanner() {
	p := termenv.ColorProfile()
	// A warm gradient, one tone per line.
	s1 := termenv.String(`  ____  _           `).Foreground(p.Color("#f97316"))
	s2 := termenv.String(` |  _ \(_)_ __  ___ `).Foreground(p.Color("#fb923c"))
	s3 := termenv.String(` | |_) | | '_ \/ __|`).Foreground(p.Color("#fbbf24"))
	s4 := termenv.String(` |  __/| | |_) \__ \`).Foreground(p.Color("#facc15"))
	s5 := termenv.String(` |_|   |_| .__/|___/`).Foreground(p.Color("#fde047"))
	s6 := termenv.String(`         |_|        `).Foreground(p.Color("#fef08a"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
