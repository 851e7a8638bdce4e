package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet/reference"
	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder/table"
	"github.com/aerissecure/salesfinder/tier"
)

// Intermediate representation of a worksheet holding one table: the first
// row is the header, every following row a record.

// Row is one record of a sheet.
type Row struct {
	Number uint32   // 1-based sheet row number
	Values []string // formatted values, len == len(Sheet.Headers)
	Fill   string   // "RRGGBB" background of the first cell, "" when unfilled
}

func (r Row) String() string {
	return fmt.Sprintf("Number: %d, Values: %q, Fill: %s", r.Number, r.Values, r.Fill)
}

// Sheet is the intermediate representation of a worksheet.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, Headers: %q, Rows: %d", s.Name, s.Headers, len(s.Rows))
}

// Table converts the sheet into a table keyed by header. Blank headers are
// named after their column letter and repeated headers get the letter
// appended, so every sheet column is kept.
func (s Sheet) Table() (*table.Table[string], error) {
	t := table.New[string](len(s.Rows))
	for c, name := range s.Headers {
		letter := reference.IndexToColumn(uint32(c))
		if name == "" {
			name = letter
		}
		if _, ok := t.Column(name); ok {
			name = fmt.Sprintf("%s (%s)", name, letter)
			klog.V(2).InfoS("Renaming repeated sheet column", "sheet", s.Name, "column", name)
		}
		cells := make([]string, len(s.Rows))
		for r, row := range s.Rows {
			cells[r] = row.Values[c]
		}
		if _, err := t.AddColumn(name, cells); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}
	return t, nil
}

// FromTable builds the sheet that WriteTable would write for t and tiers.
func FromTable(name string, t *table.Table[string], tiers []tier.Tier) Sheet {
	cols := t.Columns()
	s := Sheet{Name: name}
	for _, col := range cols {
		s.Headers = append(s.Headers, col.Name)
	}
	for r := 0; r < t.RowCount(); r++ {
		row := Row{Number: uint32(r + 2), Values: make([]string, len(cols))}
		for c, col := range cols {
			row.Values[c] = col.Cells[r]
		}
		if r < len(tiers) {
			row.Fill = tiers[r].Fill()
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
