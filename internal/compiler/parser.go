// Package compiler turns raw puzzle definitions into validated domain
// puzzles. It accepts JSON and YAML documents with the same shape: an
// optional rows/cols rectangle, optional explicit valid positions,
// optional domino list, and a region list.
package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/pips/pkg/domain"
)

// constraintKinds maps the wire names of constraint types to their domain
// kinds. An unknown name is a configuration fault, not a silent fallback.
var constraintKinds = map[string]domain.ConstraintKind{
	"=":    domain.ConstraintEqual,
	"!=":   domain.ConstraintNotEqual,
	">":    domain.ConstraintGreaterThan,
	"<":    domain.ConstraintLessThan,
	"sum":  domain.ConstraintSum,
	"none": domain.ConstraintNone,
}

// puzzleDoc is the wire-level shape of a puzzle definition. Rows and Cols
// are pointers so an absent rectangle can be told apart from a zero one.
type puzzleDoc struct {
	Rows           *int          `json:"rows" mapstructure:"rows"`
	Cols           *int          `json:"cols" mapstructure:"cols"`
	ValidPositions []positionDoc `json:"valid_positions" mapstructure:"valid_positions"`
	Dominoes       [][]int       `json:"dominoes" mapstructure:"dominoes"`
	Regions        []regionDoc   `json:"regions" mapstructure:"regions"`
}

type positionDoc struct {
	Row int `json:"row" mapstructure:"row"`
	Col int `json:"col" mapstructure:"col"`
}

type regionDoc struct {
	Positions  []positionDoc  `json:"positions" mapstructure:"positions"`
	Constraint *constraintDoc `json:"constraint" mapstructure:"constraint"`
}

// constraintDoc carries Value as a pointer: ">", "<" and "sum" require an
// explicit value, and a missing one must fail instead of defaulting to 0.
type constraintDoc struct {
	Type  string `json:"type" mapstructure:"type"`
	Value *int   `json:"value" mapstructure:"value"`
}

// Parser converts raw bytes into a domain.Puzzle.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a JSON or YAML puzzle definition, builds the domain model,
// and validates it. All faults come back as *domain.ConfigurationError.
func (p *Parser) Parse(data []byte) (*domain.Puzzle, error) {
	raw, err := decodeRaw(data)
	if err != nil {
		return nil, err
	}

	var doc puzzleDoc
	if err := decodeDoc(raw, &doc); err != nil {
		return nil, err
	}

	board, err := buildBoard(&doc)
	if err != nil {
		return nil, err
	}

	inventory, err := buildInventory(doc.Dominoes)
	if err != nil {
		return nil, err
	}

	regions, err := buildRegions(doc.Regions)
	if err != nil {
		return nil, err
	}

	puzzle := &domain.Puzzle{Board: board, Regions: regions, Inventory: inventory}
	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}

// decodeRaw unmarshals the document into a generic map. A document whose
// first non-blank byte is '{' is treated as JSON, everything else as YAML.
func decodeRaw(data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, &domain.ConfigurationError{Field: "puzzle", Reason: fmt.Sprintf("invalid JSON: %v", err)}
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ConfigurationError{Field: "puzzle", Reason: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if len(raw) == 0 {
		return nil, &domain.ConfigurationError{Field: "puzzle", Reason: "document is empty"}
	}
	return raw, nil
}

// decodeDoc maps the generic document onto the wire DTO. json.Number
// values (from UseNumber) are folded back to integers by the hook.
func decodeDoc(raw map[string]any, doc *puzzleDoc) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: jsonNumberHook,
		Result:     doc,
	})
	if err != nil {
		return &domain.ConfigurationError{Field: "puzzle", Reason: fmt.Sprintf("decoder setup failed: %v", err)}
	}
	if err := dec.Decode(raw); err != nil {
		return &domain.ConfigurationError{Field: "puzzle", Reason: fmt.Sprintf("malformed puzzle document: %v", err)}
	}
	return nil
}

func jsonNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", n.String())
		}
		return i, nil
	}
	return data, nil
}

// buildBoard resolves the three accepted shape spellings: a rectangle, an
// explicit position list, or both (a rectangle restricted to the listed
// positions, for rectangles with holes).
func buildBoard(doc *puzzleDoc) (*domain.Board, error) {
	hasRect := doc.Rows != nil || doc.Cols != nil
	hasPositions := len(doc.ValidPositions) > 0

	switch {
	case hasRect && (doc.Rows == nil || doc.Cols == nil):
		return nil, &domain.ConfigurationError{Field: "board", Reason: "rows and cols must be given together"}
	case !hasRect && !hasPositions:
		return nil, &domain.ConfigurationError{Field: "board", Reason: "puzzle needs rows/cols, valid_positions, or both"}
	case !hasRect:
		return domain.NewBoard(toCells(doc.ValidPositions))
	case !hasPositions:
		return domain.NewRectBoard(*doc.Rows, *doc.Cols)
	}

	// Hybrid: the valid set is the intersection of the rectangle and the
	// explicit positions.
	rows, cols := *doc.Rows, *doc.Cols
	if rows <= 0 || cols <= 0 {
		return nil, &domain.ConfigurationError{Field: "board", Reason: "rows and cols must be positive"}
	}
	cells := make([]domain.Cell, 0, len(doc.ValidPositions))
	for _, pos := range doc.ValidPositions {
		if pos.Row >= 0 && pos.Row < rows && pos.Col >= 0 && pos.Col < cols {
			cells = append(cells, domain.Cell{Row: pos.Row, Col: pos.Col})
		}
	}
	if len(cells) == 0 {
		return nil, &domain.ConfigurationError{Field: "board", Reason: "no valid position falls inside the rectangle"}
	}
	return domain.NewBoard(cells)
}

// buildInventory returns the standard double-six set unless the definition
// restricts the available dominoes.
func buildInventory(pairs [][]int) (*domain.Inventory, error) {
	if pairs == nil {
		return domain.StandardInventory(), nil
	}
	dominoes := make([]domain.Domino, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, &domain.ConfigurationError{
				Field:  fmt.Sprintf("dominoes[%d]", i),
				Reason: fmt.Sprintf("a domino is a pair of pip values, got %d values", len(pair)),
			}
		}
		d, err := domain.NewDomino(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		dominoes = append(dominoes, d)
	}
	return domain.NewInventory(dominoes)
}

func buildRegions(docs []regionDoc) ([]domain.Region, error) {
	regions := make([]domain.Region, 0, len(docs))
	for i, rd := range docs {
		constraint, err := buildConstraint(i, rd.Constraint)
		if err != nil {
			return nil, err
		}
		regions = append(regions, domain.Region{
			Cells:      toCells(rd.Positions),
			Constraint: constraint,
		})
	}
	return regions, nil
}

// buildConstraint resolves the wire constraint. A region without one is
// unconstrained; a region with an unknown type or a missing required
// value is rejected.
func buildConstraint(index int, cd *constraintDoc) (domain.Constraint, error) {
	if cd == nil {
		return domain.Constraint{Kind: domain.ConstraintNone}, nil
	}
	name := cd.Type
	if name == "" {
		name = "none"
	}
	kind, ok := constraintKinds[name]
	if !ok {
		return domain.Constraint{}, &domain.ConfigurationError{
			Field:  fmt.Sprintf("regions[%d].constraint", index),
			Reason: fmt.Sprintf("unknown constraint type %q", cd.Type),
		}
	}
	if kind.NeedsValue() && cd.Value == nil {
		return domain.Constraint{}, &domain.ConfigurationError{
			Field:  fmt.Sprintf("regions[%d].constraint", index),
			Reason: fmt.Sprintf("constraint type %q requires a value", name),
		}
	}
	c := domain.Constraint{Kind: kind}
	if cd.Value != nil && kind.NeedsValue() {
		c.Value = *cd.Value
	}
	return c, nil
}

func toCells(docs []positionDoc) []domain.Cell {
	cells := make([]domain.Cell, 0, len(docs))
	for _, pd := range docs {
		cells = append(cells, domain.Cell{Row: pd.Row, Col: pd.Col})
	}
	return cells
}
