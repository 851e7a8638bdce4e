package xlsx

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/salesfinder/table"
	"github.com/aerissecure/salesfinder/tier"
)

// WriteTable writes t as the only sheet of a new XLSX: a header row of column
// names followed by one row per record. When tiers is not empty every record
// is filled with the colour of its tier.
func WriteTable(w io.Writer, name string, t *table.Table[string], tiers []tier.Tier) error {
	if len(tiers) != 0 && len(tiers) != t.RowCount() {
		return fmt.Errorf("%w: %d tiers for %d rows", table.ErrRowCount, len(tiers), t.RowCount())
	}

	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	if name != "" {
		sheet.SetName(name)
	}

	cols := t.Columns()
	header := sheet.AddRow()
	for _, col := range cols {
		header.AddCell().SetString(col.Name)
	}

	styles := make(map[tier.Tier]spreadsheet.CellStyle)
	for r := 0; r < t.RowCount(); r++ {
		row := sheet.AddRow()
		var style *spreadsheet.CellStyle
		if len(tiers) > 0 {
			if cs, ok := tierStyle(wb, styles, tiers[r]); ok {
				style = &cs
			}
		}
		for _, col := range cols {
			cell := row.AddCell()
			cell.SetString(col.Cells[r])
			if style != nil {
				cell.SetStyle(*style)
			}
		}
	}
	return wb.Save(w)
}

// tierStyle returns the solid fill style of a tier, adding it to the workbook
// the first time it is used. None has no style.
func tierStyle(wb *spreadsheet.Workbook, styles map[tier.Tier]spreadsheet.CellStyle, t tier.Tier) (spreadsheet.CellStyle, bool) {
	if cs, ok := styles[t]; ok {
		return cs, true
	}
	rgb, err := hex.DecodeString(t.Fill())
	if err != nil || len(rgb) != 3 {
		return spreadsheet.CellStyle{}, false
	}
	fill := wb.StyleSheet.Fills().AddFill()
	pf := fill.SetPatternFill()
	pf.SetPattern(sml.ST_PatternTypeSolid)
	pf.SetFgColor(color.RGB(rgb[0], rgb[1], rgb[2]))

	cs := wb.StyleSheet.AddCellStyle()
	cs.SetFill(fill)
	styles[t] = cs
	return cs, true
}

// Helper to extract the underlying fill XML struct from a style ID
func GetFillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return nil
	}
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	fillIdx := int(*xf.FillIdAttr)
	if fillIdx < 0 || fillIdx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[fillIdx]
}

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return "", false
	}
	clrScheme := themes[0].ThemeElements.ClrScheme

	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = clrScheme.Dk1
	case 1:
		clr = clrScheme.Lt1
	case 2:
		clr = clrScheme.Dk2
	case 3:
		clr = clrScheme.Lt2
	case 4:
		clr = clrScheme.Accent1
	case 5:
		clr = clrScheme.Accent2
	case 6:
		clr = clrScheme.Accent3
	case 7:
		clr = clrScheme.Accent4
	case 8:
		clr = clrScheme.Accent5
	case 9:
		clr = clrScheme.Accent6
	case 10:
		clr = clrScheme.Hlink
	case 11:
		clr = clrScheme.FolHlink
	default:
		return "", false
	}

	if clr == nil {
		return "", false
	}

	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return normalizeColor(clr.SrgbClr.ValAttr), true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return normalizeColor(*clr.SysClr.LastClrAttr), true
	}
	return "", false
}
