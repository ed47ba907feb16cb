package domain

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned when the search space is exhausted without a
// solution. It is an expected outcome of solving, not an engine failure,
// and callers should match it with errors.Is.
var ErrNoSolution = errors.New("no solution found")

// ConfigurationError reports an invalid puzzle definition: an empty board,
// a region referencing a cell outside the board, a missing constraint value,
// and similar setup faults. It is detected before any search begins.
type ConfigurationError struct {
	Field  string // puzzle field the fault was found in, e.g. "regions[2]"
	Reason string // human-readable description of the fault
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("puzzle configuration: %s", e.Reason)
	}
	return fmt.Sprintf("puzzle configuration: %s: %s", e.Field, e.Reason)
}

// InvariantError reports a violation of the engine's internal contract,
// such as using a domino twice or filling an occupied cell. It signals a
// bug in the search engine, never bad puzzle input.
type InvariantError struct {
	Op     string // operation that detected the violation, e.g. "inventory.use"
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}
