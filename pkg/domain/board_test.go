package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewBoard(t *testing.T) {
	t.Run("Empty Cell List Rejected", func(t *testing.T) {
		_, err := NewBoard(nil)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("NewBoard(nil) error = %v, want *ConfigurationError", err)
		}
		if cfgErr.Field != "board" {
			t.Errorf("ConfigurationError.Field = %q, want %q", cfgErr.Field, "board")
		}
	})

	t.Run("Duplicates Collapse", func(t *testing.T) {
		b, err := NewBoard([]Cell{{0, 0}, {0, 1}, {0, 0}})
		if err != nil {
			t.Fatalf("NewBoard() error = %v", err)
		}
		if b.Size() != 2 {
			t.Errorf("Size() = %d, want 2", b.Size())
		}
	})

	t.Run("Cells Returned Row Major", func(t *testing.T) {
		b, err := NewBoard([]Cell{{1, 1}, {0, 2}, {1, 0}, {0, 0}})
		if err != nil {
			t.Fatalf("NewBoard() error = %v", err)
		}
		want := []Cell{{0, 0}, {0, 2}, {1, 0}, {1, 1}}
		if got := b.Cells(); !reflect.DeepEqual(got, want) {
			t.Errorf("Cells() = %v, want %v", got, want)
		}
	})

	t.Run("Cells Returns A Copy", func(t *testing.T) {
		b, _ := NewBoard([]Cell{{0, 0}, {0, 1}})
		got := b.Cells()
		got[0] = Cell{Row: 99, Col: 99}
		if !reflect.DeepEqual(b.Cells(), []Cell{{0, 0}, {0, 1}}) {
			t.Error("mutating the returned slice changed the board")
		}
	})
}

func TestNewRectBoard(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		size    int
		wantErr bool
	}{
		{"Two By Four", 2, 4, 8, false},
		{"Single Cell", 1, 1, 1, false},
		{"Zero Rows", 0, 3, 0, true},
		{"Negative Cols", 2, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewRectBoard(tt.rows, tt.cols)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRectBoard(%d, %d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", b.Size(), tt.size)
			}
		})
	}
}

func TestBoardNeighbors(t *testing.T) {
	// An L shape: (0,0) (0,1) (1,0) plus an island at (5,5).
	b, err := NewBoard([]Cell{{0, 0}, {0, 1}, {1, 0}, {5, 5}})
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	tests := []struct {
		name string
		cell Cell
		want []Cell
	}{
		// Probe order is up, left, right, down.
		{"Corner Sees Right Then Down", Cell{0, 0}, []Cell{{0, 1}, {1, 0}}},
		{"Arm Sees Left Only", Cell{0, 1}, []Cell{{0, 0}}},
		{"Arm Sees Up Only", Cell{1, 0}, []Cell{{0, 0}}},
		{"Island Has No Neighbors", Cell{5, 5}, []Cell{}},
		{"Off Board Probes Back In", Cell{2, 0}, []Cell{{1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Neighbors(tt.cell)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestBoardContains(t *testing.T) {
	b, _ := NewRectBoard(2, 2)
	if !b.Contains(Cell{1, 1}) {
		t.Error("Contains((1,1)) = false, want true")
	}
	if b.Contains(Cell{2, 0}) {
		t.Error("Contains((2,0)) = true, want false")
	}
	if b.Contains(Cell{-1, 0}) {
		t.Error("Contains((-1,0)) = true, want false")
	}
}

func TestCellLess(t *testing.T) {
	tests := []struct {
		a, b Cell
		want bool
	}{
		{Cell{0, 0}, Cell{0, 1}, true},
		{Cell{0, 5}, Cell{1, 0}, true},
		{Cell{1, 0}, Cell{0, 5}, false},
		{Cell{2, 2}, Cell{2, 2}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
