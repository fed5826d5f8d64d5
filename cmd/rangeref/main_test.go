package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/grid"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

func writeRanges(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.sc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ranges file: %v", err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeRanges(t, "define \"b\" B1\ndefine \"a\" A0:C3\n")

	doc, err := loadDocument(path, grid.NewMemory())
	if err != nil {
		t.Fatalf("loadDocument failed: %v", err)
	}
	if doc.Ranges.Len() != 2 {
		t.Errorf("Len = %d, expected 2", doc.Ranges.Len())
	}

	if _, err := loadDocument(filepath.Join(t.TempDir(), "missing.sc"), grid.NewMemory()); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestResolvePrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "D5", 1)

	tests := []struct {
		flag     string
		expected models.CustomRange
	}{
		{"C9:A0", models.CustomRange{TLRow: 0, TLCol: 0, BRRow: 9, BRCol: 2}},
		{"auto", models.CustomRange{TLRow: 1, TLCol: 1, BRRow: 4, BRCol: 3}},
	}

	for _, tt := range tests {
		printArea = tt.flag
		area, err := resolvePrintArea(f, "Sheet1")
		if err != nil {
			t.Errorf("resolvePrintArea(%q) failed: %v", tt.flag, err)
			continue
		}
		if *area != tt.expected {
			t.Errorf("resolvePrintArea(%q) = %+v, expected %+v", tt.flag, *area, tt.expected)
		}
	}
	printArea = ""
}
