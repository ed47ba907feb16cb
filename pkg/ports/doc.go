/*
Package ports defines the driven ports (interfaces) for the Pips solver.

These interfaces decouple the core search engine from the surfaces that
drive it, allowing the CLI, the HTTP adapter, and library callers to work
against the same contracts.

# Key Interfaces

  - Solver: Runs the domino placement search over a puzzle.
  - PuzzleParser: Turns raw puzzle definitions (JSON, YAML) into domain puzzles.
*/
package ports
