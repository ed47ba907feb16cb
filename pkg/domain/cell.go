package domain

import "fmt"

// Cell identifies one board position by row and column. Cells are plain
// values and can be used as map keys.
type Cell struct {
	Row int `json:"row" yaml:"row" mapstructure:"row"`
	Col int `json:"col" yaml:"col" mapstructure:"col"`
}

// Less reports whether c precedes other in row-major order, the canonical
// ordering used for cell selection and rendering.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
