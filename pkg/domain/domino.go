package domain

import (
	"fmt"
	"sort"
)

// Pip value bounds for a standard double-six domino set.
const (
	MinPip = 0
	MaxPip = 6
)

// Domino is an unordered pair of pip values. Its identity is the
// normalized pair (Low ≤ High); orientation is a property of a Placement,
// not of the domino itself.
type Domino struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// NewDomino normalizes the pair (a,b) into canonical form and validates
// the pip range.
func NewDomino(a, b int) (Domino, error) {
	if a < MinPip || a > MaxPip || b < MinPip || b > MaxPip {
		return Domino{}, &ConfigurationError{
			Field:  "dominoes",
			Reason: fmt.Sprintf("pip values must be in [%d,%d], got %d-%d", MinPip, MaxPip, a, b),
		}
	}
	if a > b {
		a, b = b, a
	}
	return Domino{Low: a, High: b}, nil
}

func (d Domino) String() string {
	return fmt.Sprintf("%d-%d", d.Low, d.High)
}

// less orders dominoes ascending by (Low, High); the canonical candidate
// order of the search.
func (d Domino) less(other Domino) bool {
	if d.Low != other.Low {
		return d.Low < other.Low
	}
	return d.High < other.High
}

// Inventory tracks which dominoes of a fixed set are still free. It is the
// single shared resource of a search: every Use is paired with a Release
// when the search backtracks.
type Inventory struct {
	dominoes []Domino // canonical ascending order, no duplicates
	used     map[Domino]bool
}

// StandardInventory returns the full double-six set: the 28 distinct
// pairs from 0-0 through 6-6, doubles included.
func StandardInventory() *Inventory {
	dominoes := make([]Domino, 0, 28)
	for low := MinPip; low <= MaxPip; low++ {
		for high := low; high <= MaxPip; high++ {
			dominoes = append(dominoes, Domino{Low: low, High: high})
		}
	}
	return &Inventory{dominoes: dominoes, used: make(map[Domino]bool, len(dominoes))}
}

// NewInventory builds an inventory from an explicit domino list, for
// puzzles that restrict the available tiles. Pairs are normalized by
// NewDomino before the call; a duplicate is a configuration fault because
// each domino is usable at most once.
func NewInventory(dominoes []Domino) (*Inventory, error) {
	if len(dominoes) == 0 {
		return nil, &ConfigurationError{Field: "dominoes", Reason: "inventory has no dominoes"}
	}
	seen := make(map[Domino]bool, len(dominoes))
	ordered := make([]Domino, 0, len(dominoes))
	for _, d := range dominoes {
		if seen[d] {
			return nil, &ConfigurationError{
				Field:  "dominoes",
				Reason: fmt.Sprintf("duplicate domino %s", d),
			}
		}
		seen[d] = true
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].less(ordered[j]) })
	return &Inventory{dominoes: ordered, used: make(map[Domino]bool, len(ordered))}, nil
}

// Len returns the total number of dominoes, used or not.
func (inv *Inventory) Len() int {
	return len(inv.dominoes)
}

// Available returns the unused dominoes in canonical ascending order.
func (inv *Inventory) Available() []Domino {
	out := make([]Domino, 0, len(inv.dominoes))
	for _, d := range inv.dominoes {
		if !inv.used[d] {
			out = append(out, d)
		}
	}
	return out
}

// Use marks d consumed. Using a domino that is not part of the inventory,
// or is already consumed, violates the search contract.
func (inv *Inventory) Use(d Domino) error {
	if !inv.contains(d) {
		return &InvariantError{Op: "inventory.use", Detail: fmt.Sprintf("domino %s is not in the inventory", d)}
	}
	if inv.used[d] {
		return &InvariantError{Op: "inventory.use", Detail: fmt.Sprintf("domino %s is already in use", d)}
	}
	inv.used[d] = true
	return nil
}

// Release returns d to the pool on backtrack. Releasing a domino that is
// not in use violates the search contract.
func (inv *Inventory) Release(d Domino) error {
	if !inv.used[d] {
		return &InvariantError{Op: "inventory.release", Detail: fmt.Sprintf("domino %s is not in use", d)}
	}
	delete(inv.used, d)
	return nil
}

// Clone returns an independent copy so one parsed puzzle can feed several
// concurrent solves.
func (inv *Inventory) Clone() *Inventory {
	dominoes := make([]Domino, len(inv.dominoes))
	copy(dominoes, inv.dominoes)
	used := make(map[Domino]bool, len(inv.used))
	for d, u := range inv.used {
		used[d] = u
	}
	return &Inventory{dominoes: dominoes, used: used}
}

func (inv *Inventory) contains(d Domino) bool {
	for _, have := range inv.dominoes {
		if have == d {
			return true
		}
	}
	return false
}
