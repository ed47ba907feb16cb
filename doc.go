/*
Package pips solves domino tiling puzzles in the style of the NYT "Pips": a board of cells must be completely covered by dominoes from a fixed inventory while every constraint region holds.

It implements an exhaustive backtracking search with constraint-driven pruning, separating the puzzle model (Board, Inventory, Regions) from the search engine and from the surfaces that drive it (CLI, HTTP API, browser UI).

# Concept

A puzzle has three parts: a board (any set of grid cells, not just rectangles), a domino inventory (the standard double-six set of 28 pieces, or a custom list), and regions. A region is a set of cells with one arithmetic condition over the pips placed on them: all equal, all different, each greater or less than a threshold, or summing to an exact target. The solver places dominoes on orthogonally adjacent cell pairs until the board is covered and every region is satisfied.

# Key Features

  - Exact cover with pruning: partial placements are checked against every touched region, so contradictions are abandoned early.
  - Deterministic search: the sequential engine visits candidates in a fixed order, so the same puzzle always yields the same solution.
  - Optional parallelism: root branches of the search tree can be raced across workers when throughput matters more than reproducibility.
  - Document formats: puzzles are plain JSON or YAML files, and arbitrary board shapes are supported.

# Usage

The root package exposes a facade over the internal engine and parser.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pips"
	)

	func main() {
		solver := pips.New()

		solution, stats, err := solver.SolveFile(context.Background(), "puzzle.json")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("solved in %s after %d nodes\n", stats.Duration, stats.Nodes)
		for _, placement := range solution.Placements {
			fmt.Println(placement)
		}
	}

Construct puzzles programmatically with the pkg/domain types, or with the fluent builder in pkg/dsl, when the document formats are not convenient.
*/
package pips
