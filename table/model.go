package table

import "fmt"

// Column is one named column of a Table. Index is its 0-based display
// position and changes as columns are inserted in front of it; Cells is never
// reallocated by an insertion.
type Column[V any] struct {
	Name  string
	Index int
	Cells []V // len == RowCount of the parent table
}

func (c *Column[V]) String() string {
	return fmt.Sprintf("Name: %s, Index: %d, Cells: %d", c.Name, c.Index, len(c.Cells))
}

// InsertRequest asks for a new column Name positioned directly after the
// anchor column After.
type InsertRequest struct {
	Name  string `json:"name"`
	After string `json:"after"`
}

func (r InsertRequest) String() string {
	return fmt.Sprintf("%s after %s", r.Name, r.After)
}

// RowContext is handed to a Transform for each row of a populate pass.
type RowContext[V any] struct {
	Index  int
	Values map[string]V // cell of every column for this row, keyed by column name

	// Prev is the value the transform returned for the previous row.
	// HasPrev is false for row 0, where Prev is the zero value.
	Prev    V
	HasPrev bool
}

// Value returns the cell of the named column for this row.
func (rc RowContext[V]) Value(name string) (V, bool) {
	v, ok := rc.Values[name]
	return v, ok
}

// Transform computes the cell of a derived column for one row. The returned
// value becomes the cell content and the Prev of the next row.
type Transform[V any] func(RowContext[V]) V
