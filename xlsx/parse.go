package xlsx

import (
	"errors"
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/salesfinder/table"
)

// ErrNoSheet is returned when a workbook has no worksheet or the first
// worksheet has no header row.
var ErrNoSheet = errors.New("workbook has no table sheet")

// ReadTable reads the first sheet of an XLSX from r/size into a table keyed
// by the header row.
func ReadTable(r io.ReaderAt, size int64) (*table.Table[string], error) {
	s, err := ReadSheet(r, size)
	if err != nil {
		return nil, err
	}
	return s.Table()
}

// ReadSheet reads the first sheet of an XLSX from r/size and returns the
// intermediate representation.
func ReadSheet(r io.ReaderAt, size int64) (Sheet, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return Sheet{}, err
	}
	if len(wb.Sheets()) == 0 {
		return Sheet{}, ErrNoSheet
	}
	return parseSheet(wb, wb.Sheets()[0])
}

func parseSheet(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet) (Sheet, error) {
	rows := sheet.Rows()
	if len(rows) == 0 {
		return Sheet{}, ErrNoSheet
	}

	// ---- find max column ----
	maxCols := 0
	for _, row := range rows {
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			if c := int(reference.ColumnToIndex(colName)) + 1; c > maxCols {
				maxCols = c
			}
		}
	}

	s := Sheet{Name: sheet.Name()}
	for i, row := range rows {
		values := make([]string, maxCols)
		fill := ""
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			values[colIdx] = strings.TrimSpace(cell.GetFormattedValue())
			if colIdx == 0 {
				fill = cellFill(wb, cell)
			}
		}
		if i == 0 {
			s.Headers = values
			continue
		}
		s.Rows = append(s.Rows, Row{Number: row.RowNumber(), Values: values, Fill: fill})
	}
	return s, nil
}

// cellFill resolves the solid background colour of a cell as "RRGGBB".
func cellFill(wb *spreadsheet.Workbook, cell spreadsheet.Cell) string {
	if cell.X().SAttr == nil {
		return ""
	}
	fill := GetFillProps(wb.StyleSheet, *cell.X().SAttr)
	if fill == nil || fill.PatternFill == nil || fill.PatternFill.FgColor == nil {
		return ""
	}
	fg := fill.PatternFill.FgColor
	if fg.RgbAttr != nil {
		return normalizeColor(*fg.RgbAttr)
	}
	if fg.ThemeAttr != nil {
		if hex, ok := ThemeColorToRGB(wb, int(*fg.ThemeAttr)); ok {
			return hex
		}
	}
	return ""
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
