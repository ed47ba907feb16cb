/*
Package domain contains the core domain models and business logic for the Pips solver.

It defines the fundamental entities of a puzzle, such as the Board, Dominoes,
Regions, and their Constraints. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Board: The set of valid cells a puzzle is played on.
  - Domino: An unordered pair of pip values drawn from a finite Inventory.
  - Region: A group of cells that must jointly satisfy a Constraint.
  - Constraint: An arithmetic condition (equality, bounds, sum) over pip values.
  - Puzzle: The aggregate that ties a board, its regions, and an inventory together.
*/
package domain
