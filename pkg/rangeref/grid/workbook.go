package grid

import (
	"fmt"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is a grid backed by one sheet of a workbook. Grid row r and
// column c map to workbook row r+1 and column c+1.
type Workbook struct {
	f     *excelize.File
	sheet string
	epoch uint64
	// rowCount caches the number of rows present in the sheet, -1 when
	// unknown.
	rowCount int
}

// NewWorkbook returns a grid over sheet of f.
func NewWorkbook(f *excelize.File, sheet string) (*Workbook, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	return &Workbook{f: f, sheet: sheet, rowCount: -1}, nil
}

// Sheet returns the sheet name.
func (w *Workbook) Sheet() string {
	return w.sheet
}

// Lookat returns the identity of the cell at row, col.
func (w *Workbook) Lookat(row, col int) models.CellRef {
	return models.CellRef{Cell: models.Cell{Row: row, Col: col}, Epoch: w.epoch}
}

// RowHidden reports whether row is hidden in the sheet.
func (w *Workbook) RowHidden(row int) bool {
	// The workbook reports rows past the last stored row as not visible.
	if row < 0 || row >= w.rows() {
		return false
	}
	visible, err := w.f.GetRowVisible(w.sheet, row+1)
	return err == nil && !visible
}

// ColHidden reports whether col is hidden in the sheet.
func (w *Workbook) ColHidden(col int) bool {
	if col < 0 {
		return false
	}
	visible, err := w.f.GetColVisible(w.sheet, models.ColumnName(col))
	return err == nil && !visible
}

// HideRow hides or shows row.
func (w *Workbook) HideRow(row int, hidden bool) error {
	w.rowCount = -1
	return w.f.SetRowVisible(w.sheet, row+1, !hidden)
}

// HideCol hides or shows col.
func (w *Workbook) HideCol(col int, hidden bool) error {
	return w.f.SetColVisible(w.sheet, models.ColumnName(col), !hidden)
}

// Apply inserts or deletes rows or columns in the sheet and starts a new
// storage epoch.
func (w *Workbook) Apply(e formula.Edit) error {
	var err error
	switch {
	case e.Axis == formula.Rows && e.Delta > 0:
		err = w.f.InsertRows(w.sheet, e.At+1, e.Delta)
	case e.Axis == formula.Rows && e.Delta < 0:
		for i := 0; i < -e.Delta && err == nil; i++ {
			err = w.f.RemoveRow(w.sheet, e.At+1)
		}
	case e.Axis == formula.Cols && e.Delta > 0:
		err = w.f.InsertCols(w.sheet, models.ColumnName(e.At), e.Delta)
	case e.Axis == formula.Cols && e.Delta < 0:
		for i := 0; i < -e.Delta && err == nil; i++ {
			err = w.f.RemoveCol(w.sheet, models.ColumnName(e.At))
		}
	}

	w.epoch++
	w.rowCount = -1
	return err
}

// Valid reports whether ref was issued under the current epoch.
func (w *Workbook) Valid(ref models.CellRef) bool {
	return ref.Epoch == w.epoch
}

// rows counts the rows stored in the sheet.
func (w *Workbook) rows() int {
	if w.rowCount >= 0 {
		return w.rowCount
	}

	rows, err := w.f.Rows(w.sheet)
	if err != nil {
		return 0
	}
	n := 0
	for rows.Next() {
		n++
	}
	_ = rows.Close()

	w.rowCount = n
	return n
}
