package rangeref

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

func createTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for row := 1; row <= 10; row++ {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue("Sheet1", cell, row)
	}
	f.SetDefinedName(&excelize.DefinedName{Name: "totals", RefersTo: "Sheet1!$A$2:$C$5"})
	f.SetDefinedName(&excelize.DefinedName{Name: "net.total", RefersTo: "Sheet1!$A$1"})
	f.SetDefinedName(&excelize.DefinedName{Name: "_xlnm.Print_Area", RefersTo: "Sheet1!$A$1:$D$10", Scope: "Sheet1"})

	path := filepath.Join(t.TempDir(), "ranges.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestOpenWorkbook(t *testing.T) {
	path := createTestWorkbook(t)

	var reported []error
	wb, err := OpenWorkbook(path, "", Options{ErrorSink: func(err error) { reported = append(reported, err) }})
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	if wb.Sheet() != "Sheet1" {
		t.Errorf("Sheet = %q, expected Sheet1", wb.Sheet())
	}
	def, ok := wb.Ranges.Definition("totals")
	if !ok || def != "$A$1:$C$4" {
		t.Errorf("Definition(totals) = %q, %v, expected $A$1:$C$4", def, ok)
	}
	if wb.Ranges.Len() != 1 || len(reported) != 1 {
		t.Errorf("Len = %d, reported = %v", wb.Ranges.Len(), reported)
	}
	if wb.Modified() != 0 {
		t.Errorf("Modified = %d after open, expected 0", wb.Modified())
	}
	if wb.PrintArea == nil || *wb.PrintArea != (models.CustomRange{TLRow: 0, TLCol: 0, BRRow: 9, BRCol: 3}) {
		t.Errorf("PrintArea = %+v", wb.PrintArea)
	}
}

func TestWorkbookApplyAndSave(t *testing.T) {
	path := createTestWorkbook(t)

	wb, err := OpenWorkbook(path, "Sheet1", Options{ShiftReferences: true, ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	if err := wb.Ranges.Add("head", endpoint(0, 0, 0), endpoint(0, 0, 0), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := wb.Apply(formula.Edit{Axis: formula.Rows, At: 0, Delta: 1}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if def, _ := wb.Ranges.Definition("head"); def != "A1" {
		t.Errorf("Definition(head) = %q, expected A1", def)
	}
	if def, _ := wb.Ranges.Definition("totals"); def != "$A$1:$C$4" {
		t.Errorf("anchored Definition(totals) = %q, expected $A$1:$C$4", def)
	}
	r, _ := wb.Ranges.Find("head")
	if !wb.Grid.Valid(r.Left.Ref) {
		t.Errorf("head not resolved after Apply")
	}

	out := filepath.Join(t.TempDir(), "saved.xlsx")
	if err := wb.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := OpenWorkbook(out, "Sheet1", Options{ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook(saved) failed: %v", err)
	}
	defer saved.Close()

	if def, _ := saved.Ranges.Definition("head"); def != "A1" {
		t.Errorf("saved Definition(head) = %q, expected A1", def)
	}
	if saved.Ranges.Len() != 2 {
		t.Errorf("saved Len = %d, expected 2", saved.Ranges.Len())
	}
}

func TestWorkbookSaveKeepsAnchoring(t *testing.T) {
	path := createTestWorkbook(t)

	wb, err := OpenWorkbook(path, "Sheet1", Options{ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	tests := []struct {
		name        string
		left, right models.Endpoint
	}{
		{"rel", endpoint(1, 1, models.FixRow), endpoint(2, 2, 0)},
		{"cols", endpoint(0, 0, models.FixCol), endpoint(4, 3, models.FixCol)},
		{"free", endpoint(3, 1, 0), endpoint(5, 2, 0)},
	}
	for _, tt := range tests {
		if err := wb.Ranges.Add(tt.name, tt.left, tt.right, true); err != nil {
			t.Fatalf("Add(%q) failed: %v", tt.name, err)
		}
	}

	out := filepath.Join(t.TempDir(), "anchors.xlsx")
	if err := wb.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved, err := OpenWorkbook(out, "Sheet1", Options{ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook(saved) failed: %v", err)
	}
	defer saved.Close()

	for _, tt := range tests {
		r, ok := saved.Ranges.Find(tt.name)
		if !ok {
			t.Errorf("%s missing after Save", tt.name)
			continue
		}
		if r.Left.Ref.Cell != tt.left.Ref.Cell || r.Right.Ref.Cell != tt.right.Ref.Cell {
			t.Errorf("%s corners = %s, expected %s:%s", tt.name, r.Definition(), tt.left, tt.right)
		}
		if r.Left.Flags != tt.left.Flags || r.Right.Flags != tt.right.Flags {
			t.Errorf("%s anchoring = %s, expected %s:%s", tt.name, r.Definition(), tt.left, tt.right)
		}
	}
}

func TestWorkbookSaveDropsRemovedNames(t *testing.T) {
	path := createTestWorkbook(t)

	wb, err := OpenWorkbook(path, "Sheet1", Options{ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	wb.Ranges.Remove(models.Cell{Row: 1, Col: 0}, models.Cell{Row: 4, Col: 2})
	if !wb.Ranges.IsEmpty() {
		t.Fatalf("Remove left %d ranges", wb.Ranges.Len())
	}

	out := filepath.Join(t.TempDir(), "removed.xlsx")
	if err := wb.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved, err := OpenWorkbook(out, "Sheet1", Options{ErrorSink: func(error) {}})
	if err != nil {
		t.Fatalf("OpenWorkbook(saved) failed: %v", err)
	}
	defer saved.Close()

	if r, ok := saved.Ranges.Find("totals"); ok {
		t.Errorf("removed range came back after Save: %s", r.Definition())
	}
	if saved.PrintArea == nil {
		t.Errorf("print area lost after Save")
	}
}
