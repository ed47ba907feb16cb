package domain

import (
	"errors"
	"testing"
)

func mustRect(t *testing.T, rows, cols int) *Board {
	t.Helper()
	b, err := NewRectBoard(rows, cols)
	if err != nil {
		t.Fatalf("NewRectBoard(%d, %d) error = %v", rows, cols, err)
	}
	return b
}

func TestPuzzleValidate(t *testing.T) {
	board := func(t *testing.T) *Board { return mustRect(t, 2, 2) }

	tests := []struct {
		name      string
		puzzle    func(t *testing.T) *Puzzle
		wantField string // empty means valid
	}{
		{
			name: "Valid Puzzle",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{
					Board: board(t),
					Regions: []Region{
						{Cells: []Cell{{0, 0}, {0, 1}}, Constraint: Constraint{Kind: ConstraintEqual}},
						{Cells: []Cell{{1, 0}, {1, 1}}, Constraint: Constraint{Kind: ConstraintSum, Value: 5}},
					},
					Inventory: StandardInventory(),
				}
			},
		},
		{
			name: "Nil Board",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{Inventory: StandardInventory()}
			},
			wantField: "board",
		},
		{
			name: "Missing Inventory",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{Board: board(t)}
			},
			wantField: "dominoes",
		},
		{
			name: "Empty Region",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{
					Board:     board(t),
					Regions:   []Region{{Constraint: Constraint{Kind: ConstraintNone}}},
					Inventory: StandardInventory(),
				}
			},
			wantField: "regions[0]",
		},
		{
			name: "Region Cell Off Board",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{
					Board: board(t),
					Regions: []Region{
						{Cells: []Cell{{0, 0}}, Constraint: Constraint{Kind: ConstraintNone}},
						{Cells: []Cell{{3, 3}}, Constraint: Constraint{Kind: ConstraintNone}},
					},
					Inventory: StandardInventory(),
				}
			},
			wantField: "regions[1]",
		},
		{
			name: "Unknown Constraint Kind",
			puzzle: func(t *testing.T) *Puzzle {
				return &Puzzle{
					Board: board(t),
					Regions: []Region{
						{Cells: []Cell{{0, 0}}, Constraint: Constraint{Kind: ConstraintKind(42)}},
					},
					Inventory: StandardInventory(),
				}
			},
			wantField: "regions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.puzzle(t).Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigurationError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigurationError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestRegionSatisfiable(t *testing.T) {
	region := Region{
		Cells:      []Cell{{0, 0}, {0, 1}, {0, 2}},
		Constraint: Constraint{Kind: ConstraintSum, Value: 6},
	}

	t.Run("Counts Unfilled Cells", func(t *testing.T) {
		// One filled cell at 5, two empty: 5 <= 6 and the gap is bridgeable.
		if !region.Satisfiable(map[Cell]int{{0, 0}: 5}) {
			t.Error("Satisfiable with one filled cell = false, want true")
		}
	})

	t.Run("Overshoot Detected", func(t *testing.T) {
		if region.Satisfiable(map[Cell]int{{0, 0}: 4, {0, 1}: 4}) {
			t.Error("Satisfiable past the target = true, want false")
		}
	})

	t.Run("Values Outside Region Ignored", func(t *testing.T) {
		if !region.Satisfiable(map[Cell]int{{5, 5}: 6, {0, 0}: 6}) {
			t.Error("Satisfiable = false, want true; unrelated cell leaked in")
		}
	})

	t.Run("No Filled Cells", func(t *testing.T) {
		// Library callers may ask before any placement lands; every kind
		// must answer, not panic.
		kinds := []Constraint{
			{Kind: ConstraintEqual},
			{Kind: ConstraintNotEqual},
			{Kind: ConstraintGreaterThan, Value: 2},
			{Kind: ConstraintLessThan, Value: 4},
			{Kind: ConstraintSum, Value: 6},
			{Kind: ConstraintNone},
		}
		for _, c := range kinds {
			empty := Region{Cells: region.Cells, Constraint: c}
			if !empty.Satisfiable(map[Cell]int{}) {
				t.Errorf("Satisfiable(%s) with no filled cells = false, want true", c)
			}
		}
	})
}

func TestRegionSatisfied(t *testing.T) {
	region := Region{
		Cells:      []Cell{{0, 0}, {0, 1}},
		Constraint: Constraint{Kind: ConstraintEqual},
	}

	t.Run("Complete And Holding", func(t *testing.T) {
		if !region.Satisfied(map[Cell]int{{0, 0}: 2, {0, 1}: 2}) {
			t.Error("Satisfied = false, want true")
		}
	})

	t.Run("Missing Cell Fails", func(t *testing.T) {
		if region.Satisfied(map[Cell]int{{0, 0}: 2}) {
			t.Error("Satisfied with an unfilled cell = true, want false")
		}
	})
}

func TestSolutionValues(t *testing.T) {
	sol := Solution{Placements: []Placement{
		{Domino: Domino{Low: 1, High: 2}, CellA: Cell{0, 0}, CellB: Cell{0, 1}, PipsA: 2, PipsB: 1},
		{Domino: Domino{Low: 3, High: 3}, CellA: Cell{1, 0}, CellB: Cell{1, 1}, PipsA: 3, PipsB: 3},
	}}

	values := sol.Values()
	if len(values) != 4 {
		t.Fatalf("Values() has %d entries, want 4", len(values))
	}
	if values[Cell{0, 0}] != 2 || values[Cell{0, 1}] != 1 {
		t.Errorf("Values() misplaced the oriented pair: %v", values)
	}

	if v, ok := sol.Value(Cell{1, 1}); !ok || v != 3 {
		t.Errorf("Value((1,1)) = %d, %v; want 3, true", v, ok)
	}
	if _, ok := sol.Value(Cell{9, 9}); ok {
		t.Error("Value((9,9)) reported a pip for an uncovered cell")
	}
}
