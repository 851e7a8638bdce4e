// Package table holds the column model used to inject derived columns into an
// existing table.
//
// A Table maps column names to Column records carrying a mutable display
// index. Inserting a column only shifts indexes; cell slices of existing
// columns are never copied, so cells may be expensive values such as DOM
// fragments.
package table

import (
	"errors"
	"fmt"
	"sort"

	"k8s.io/klog/v2"
)

// Table is an ordered set of equally long columns.
type Table[V any] struct {
	columns map[string]*Column[V]
	rows    int
}

// New returns an empty table with the given number of rows.
func New[V any](rows int) *Table[V] {
	return &Table[V]{
		columns: make(map[string]*Column[V]),
		rows:    rows,
	}
}

// RowCount returns the number of rows.
func (t *Table[V]) RowCount() int {
	return t.rows
}

// Len returns the number of columns.
func (t *Table[V]) Len() int {
	return len(t.columns)
}

// AddColumn appends a column after the current last column.
func (t *Table[V]) AddColumn(name string, cells []V) (*Column[V], error) {
	if _, ok := t.columns[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if len(cells) != t.rows {
		return nil, fmt.Errorf("%w: column %q has %d cells, table has %d rows", ErrRowCount, name, len(cells), t.rows)
	}
	col := &Column[V]{Name: name, Index: len(t.columns), Cells: cells}
	t.columns[name] = col
	return col, nil
}

// Column returns the named column.
func (t *Table[V]) Column(name string) (*Column[V], bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Columns returns the columns in display order.
func (t *Table[V]) Columns() []*Column[V] {
	cols := make([]*Column[V], 0, len(t.columns))
	for _, col := range t.columns {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].Index < cols[j].Index })
	return cols
}

// Names returns the column names in display order.
func (t *Table[V]) Names() []string {
	cols := t.Columns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return names
}

// Row returns the cells of row i in display order.
func (t *Table[V]) Row(i int) []V {
	cols := t.Columns()
	row := make([]V, len(cols))
	for c, col := range cols {
		row[c] = col.Cells[i]
	}
	return row
}

// InsertColumns applies the requests in order. A later request may anchor on
// a column created by an earlier one.
//
// A request that cannot be applied is skipped and leaves the table untouched;
// the remaining requests still run. All failures are returned joined, each
// wrapping ErrUnknownColumn or ErrDuplicateColumn.
func (t *Table[V]) InsertColumns(requests ...InsertRequest) error {
	var errs []error
	for _, req := range requests {
		if err := t.insert(req); err != nil {
			klog.V(4).InfoS("Skipping column insertion", "request", req.String(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Table[V]) insert(req InsertRequest) error {
	anchor, ok := t.columns[req.After]
	if !ok {
		return fmt.Errorf("%w: cannot insert %q after %q", ErrUnknownColumn, req.Name, req.After)
	}
	if _, ok := t.columns[req.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, req.Name)
	}

	index := anchor.Index + 1
	for _, col := range t.columns {
		if col.Index >= index {
			col.Index++
		}
	}
	t.columns[req.Name] = &Column[V]{
		Name:  req.Name,
		Index: index,
		Cells: make([]V, t.rows),
	}
	return nil
}

// Populate fills the named column by calling fn once per row, from row 0 up.
// Each call receives the value returned for the previous row. The pass is
// strictly sequential.
func (t *Table[V]) Populate(name string, fn Transform[V]) error {
	target, ok := t.columns[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	var (
		prev    V
		hasPrev bool
	)
	for i := 0; i < t.rows; i++ {
		values := make(map[string]V, len(t.columns))
		for n, col := range t.columns {
			values[n] = col.Cells[i]
		}
		v := fn(RowContext[V]{
			Index:   i,
			Values:  values,
			Prev:    prev,
			HasPrev: hasPrev,
		})
		target.Cells[i] = v
		prev, hasPrev = v, true
	}
	return nil
}
