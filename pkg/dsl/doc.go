/*
Package dsl provides a fluent builder for constructing puzzles programmatically.

It lets callers define boards, inventories and constraint regions with a type-safe chain
instead of external JSON or YAML files. This is particularly useful for generated puzzles,
unit tests, and leveraging IDE autocompletion.

Example usage:

	package main

	import (
		"github.com/aretw0/pips/pkg/dsl"
	)

	func main() {
		puzzle, err := dsl.New().
			Rect(2, 4).
			Region(dsl.At(0, 0), dsl.At(0, 1)).Equal().
			Region(dsl.At(0, 2), dsl.At(0, 3)).Sum(5).
			Region(dsl.At(1, 0), dsl.At(1, 1)).NotEqual().
			Region(dsl.At(1, 2), dsl.At(1, 3)).LessThan(4).
			Build()
		if err != nil {
			panic(err)
		}

		// The resulting puzzle feeds straight into pips.New().Solve(...)
		_ = puzzle
	}
*/
package dsl

import "github.com/aretw0/pips/pkg/domain"

// At is a shorthand cell literal for region declarations.
func At(row, col int) domain.Cell {
	return domain.Cell{Row: row, Col: col}
}
