package output

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

// ExportWorkbook writes each range as a workbook-scoped defined name
// referring to sheet, replacing a name that already exists. Workbook rows
// are 1-based; each axis keeps its anchoring.
func ExportWorkbook(f *excelize.File, sheet string, ranges []models.NamedRange) error {
	for i := range ranges {
		r := &ranges[i]
		refersTo := sheetReference(sheet, r.Left, r.Right, r.IsRange)
		_ = f.DeleteDefinedName(&excelize.DefinedName{Name: r.Name})
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     r.Name,
			RefersTo: refersTo,
		}); err != nil {
			return fmt.Errorf("defined name %q: %w", r.Name, err)
		}
	}
	return nil
}

// RemoveDefinedNames deletes names from the workbook, whether they are
// scoped to the workbook or to sheet. Missing names are ignored.
func RemoveDefinedNames(f *excelize.File, sheet string, names []string) {
	for _, name := range names {
		_ = f.DeleteDefinedName(&excelize.DefinedName{Name: name})
		_ = f.DeleteDefinedName(&excelize.DefinedName{Name: name, Scope: sheet})
	}
}

// ExportPrintArea sets the print area of sheet to area. Print areas are
// always absolute.
func ExportPrintArea(f *excelize.File, sheet string, area *models.CustomRange) error {
	const abs = models.FixRow | models.FixCol
	tl := models.Endpoint{Ref: models.CellRef{Cell: models.Cell{Row: area.TLRow, Col: area.TLCol}}, Flags: abs}
	br := models.Endpoint{Ref: models.CellRef{Cell: models.Cell{Row: area.BRRow, Col: area.BRCol}}, Flags: abs}
	_ = f.DeleteDefinedName(&excelize.DefinedName{Name: printAreaName, Scope: sheet})
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: sheetReference(sheet, tl, br, true),
		Scope:    sheet,
	})
}

const printAreaName = "_xlnm.Print_Area"

// sheetReference renders Sheet!A1[:B2] for grid endpoints.
func sheetReference(sheet string, tl, br models.Endpoint, isRange bool) string {
	ref := quoteSheet(sheet) + "!" + workbookCell(tl)
	if isRange {
		ref += ":" + workbookCell(br)
	}
	return ref
}

// workbookCell renders an endpoint with the workbook's 1-based row.
func workbookCell(e models.Endpoint) string {
	s := ""
	if e.Flags.Has(models.FixCol) {
		s += "$"
	}
	s += models.ColumnName(e.Ref.Col)
	if e.Flags.Has(models.FixRow) {
		s += "$"
	}
	return s + strconv.Itoa(e.Ref.Row+1)
}

func quoteSheet(sheet string) string {
	for _, r := range sheet {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			return "'" + sheet + "'"
		}
	}
	return sheet
}
