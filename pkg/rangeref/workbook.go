package rangeref

import (
	"fmt"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/grid"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/output"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is a document bound to one sheet of an Excel workbook.
type Workbook struct {
	*Document

	// File is the underlying workbook.
	File *excelize.File
	// Grid is the sheet the ranges refer to.
	Grid *grid.Workbook
	// PrintArea is the sheet's print area, nil if none is set.
	PrintArea *models.CustomRange

	// saved holds the names the file defines for the sheet.
	saved []string
}

// OpenWorkbook opens the workbook at path and loads the defined names that
// refer to sheet. An empty sheet selects the first sheet. Names that are
// not valid range names are passed to the error sink and skipped.
func OpenWorkbook(path, sheet string, opts Options) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb, err := NewWorkbook(f, sheet, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return wb, nil
}

// NewWorkbook binds a document to sheet of f and loads its defined names.
func NewWorkbook(f *excelize.File, sheet string, opts Options) (*Workbook, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	g, err := grid.NewWorkbook(f, sheet)
	if err != nil {
		return nil, err
	}

	defs, err := parser.ImportDefinedNames(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read defined names: %w", err)
	}

	wb := &Workbook{
		Document: NewDocument(g, nil, opts),
		File:     f,
		Grid:     g,
	}
	// Failures already went to the error sink.
	_ = wb.Load(defs)
	wb.modified = 0
	wb.saved = wb.names()

	if area, ok := parser.ImportPrintArea(f, sheet); ok {
		wb.PrintArea = area
	}
	return wb, nil
}

// Sheet returns the name of the bound sheet.
func (w *Workbook) Sheet() string {
	return w.Grid.Sheet()
}

// Apply edits the sheet and updates every range to follow the edit.
func (w *Workbook) Apply(e formula.Edit, exprs ...formula.Node) error {
	if err := w.Grid.Apply(e); err != nil {
		return err
	}
	w.ApplyEdit(e, exprs...)
	return nil
}

// Save writes the ranges and print area back as defined names and saves
// the workbook to path. Names removed from the table since the workbook
// was opened or last saved are deleted from the file.
func (w *Workbook) Save(path string) error {
	var removed []string
	for _, name := range w.saved {
		if _, ok := w.Ranges.Find(name); !ok {
			removed = append(removed, name)
		}
	}
	output.RemoveDefinedNames(w.File, w.Sheet(), removed)

	if err := output.ExportWorkbook(w.File, w.Sheet(), w.Ranges.All()); err != nil {
		return err
	}
	w.saved = w.names()
	if w.PrintArea != nil {
		if err := output.ExportPrintArea(w.File, w.Sheet(), w.PrintArea); err != nil {
			return err
		}
	}
	return w.File.SaveAs(path)
}

func (w *Workbook) names() []string {
	ranges := w.Ranges.All()
	names := make([]string, len(ranges))
	for i := range ranges {
		names[i] = ranges[i].Name
	}
	return names
}

// Close releases the document and closes the workbook.
func (w *Workbook) Close() error {
	w.Document.Close()
	return w.File.Close()
}
