package output

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/parser"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := ExportWorkbook(f, "Sheet1", testRanges()); err != nil {
		t.Fatalf("ExportWorkbook failed: %v", err)
	}
	area := models.NewCustomRange(0, 0, 9, 3)
	if err := ExportPrintArea(f, "Sheet1", area); err != nil {
		t.Fatalf("ExportPrintArea failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	refs := make(map[string]string)
	for _, dn := range f2.GetDefinedName() {
		refs[dn.Name] = dn.RefersTo
	}
	if refs["alpha"] != "Sheet1!A1" {
		t.Errorf("alpha refers to %q", refs["alpha"])
	}
	if refs["beta"] != "Sheet1!B$3:$AB10" {
		t.Errorf("beta refers to %q", refs["beta"])
	}

	defs, err := parser.ImportDefinedNames(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ImportDefinedNames failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 imported names, got %d", len(defs))
	}
	for _, d := range defs {
		if d.Name == "beta" && (d.Left.Ref.Cell != (models.Cell{Row: 2, Col: 1}) || d.Right.Ref.Cell != (models.Cell{Row: 9, Col: 27})) {
			t.Errorf("beta imported as %+v", d)
		}
		if d.Name == "beta" && (d.Left.Flags != models.FixRow || d.Right.Flags != models.FixCol) {
			t.Errorf("beta anchoring = %v/%v, expected row/col", d.Left.Flags, d.Right.Flags)
		}
		if d.Name == "alpha" && d.Left.Flags != 0 {
			t.Errorf("alpha anchoring = %v, expected none", d.Left.Flags)
		}
	}

	got, ok := parser.ImportPrintArea(f2, "Sheet1")
	if !ok || *got != *area {
		t.Errorf("print area round trip = %+v, %v", got, ok)
	}
}

func TestSheetReference(t *testing.T) {
	ep := func(row, col int, flags models.AxisFlags) models.Endpoint {
		return models.Endpoint{Ref: models.CellRef{Cell: models.Cell{Row: row, Col: col}}, Flags: flags}
	}
	abs := models.FixRow | models.FixCol

	tests := []struct {
		sheet    string
		tl, br   models.Endpoint
		isRange  bool
		expected string
	}{
		{"Sheet1", ep(2, 1, abs), ep(4, 3, abs), false, "Sheet1!$B$3"},
		{"Sheet1", ep(2, 1, abs), ep(4, 3, abs), true, "Sheet1!$B$3:$D$5"},
		{"My Data", ep(2, 1, abs), ep(4, 3, abs), true, "'My Data'!$B$3:$D$5"},
		{"Sheet1", ep(2, 1, 0), ep(4, 3, 0), true, "Sheet1!B3:D5"},
		{"Sheet1", ep(2, 1, models.FixRow), ep(4, 3, models.FixCol), true, "Sheet1!B$3:$D5"},
	}

	for _, tt := range tests {
		result := sheetReference(tt.sheet, tt.tl, tt.br, tt.isRange)
		if result != tt.expected {
			t.Errorf("sheetReference(%q, %v) = %q, expected %q", tt.sheet, tt.isRange, result, tt.expected)
		}
	}
}

func TestExportWorkbookReplaces(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for i := 0; i < 2; i++ {
		if err := ExportWorkbook(f, "Sheet1", testRanges()); err != nil {
			t.Fatalf("ExportWorkbook pass %d failed: %v", i+1, err)
		}
		if err := ExportPrintArea(f, "Sheet1", models.NewCustomRange(0, 0, 1, 1)); err != nil {
			t.Fatalf("ExportPrintArea pass %d failed: %v", i+1, err)
		}
	}

	if n := len(f.GetDefinedName()); n != 3 {
		t.Errorf("expected 3 defined names, got %d", n)
	}
}

func TestRemoveDefinedNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetDefinedName(&excelize.DefinedName{Name: "wide", RefersTo: "Sheet1!$A$1"})
	f.SetDefinedName(&excelize.DefinedName{Name: "local", RefersTo: "Sheet1!$B$2", Scope: "Sheet1"})
	f.SetDefinedName(&excelize.DefinedName{Name: "kept", RefersTo: "Sheet1!$C$3"})

	RemoveDefinedNames(f, "Sheet1", []string{"wide", "local", "missing"})

	names := f.GetDefinedName()
	if len(names) != 1 || names[0].Name != "kept" {
		t.Errorf("remaining names = %+v, expected only kept", names)
	}
}
