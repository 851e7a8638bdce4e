package table

import "errors"

var (
	// ErrUnknownColumn is returned when a column name (an insertion anchor or
	// a populate target) does not exist in the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateColumn is returned when a column name is already taken.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrRowCount is returned when a column's cells do not match the table's row count.
	ErrRowCount = errors.New("cell count does not match row count")
)
