package parser

import (
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ImportDefinedNames reads the defined names of a workbook that refer to
// a single cell or rectangle on sheet. Built-in names (_xlnm.*) and names
// scoped to other sheets are skipped, as are references this package
// cannot parse.
func ImportDefinedNames(f *excelize.File, sheet string) ([]Definition, error) {
	var defs []Definition

	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(strings.ToLower(dn.Name), "_xlnm.") {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheet {
			continue
		}

		refSheet, ref := splitSheetReference(dn.RefersTo)
		if refSheet != sheet {
			continue
		}

		left, right, isRange, err := parseWorkbookRange(ref)
		if err != nil {
			continue
		}
		defs = append(defs, Definition{
			Name:    dn.Name,
			Left:    left,
			Right:   right,
			IsRange: isRange,
		})
	}

	return defs, nil
}

// ImportPrintArea returns the first print area defined for sheet, if any.
func ImportPrintArea(f *excelize.File, sheet string) (*models.CustomRange, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}

		// Multiple print areas are comma separated; the first one wins.
		for _, part := range strings.Split(dn.RefersTo, ",") {
			refSheet, ref := splitSheetReference(strings.TrimSpace(part))
			if refSheet != sheet {
				continue
			}
			left, right, _, err := parseWorkbookRange(ref)
			if err != nil {
				continue
			}
			return models.NewCustomRange(left.Ref.Row, left.Ref.Col, right.Ref.Row, right.Ref.Col), true
		}
	}

	return nil, false
}

// splitSheetReference splits 'Sheet Name'!$A$1:$D$10 or Sheet1!$A$1 into
// the unquoted sheet name and the cell part.
func splitSheetReference(ref string) (string, string) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}
	return strings.Trim(ref[:idx], "'"), ref[idx+1:]
}

// parseWorkbookRange parses a workbook reference, whose rows are 1-based,
// into grid endpoints.
func parseWorkbookRange(ref string) (left, right models.Endpoint, isRange bool, err error) {
	left, right, isRange, err = ParseRange(ref)
	if err != nil {
		return left, right, false, err
	}
	if left.Ref.Row < 1 || right.Ref.Row < 1 {
		return left, right, false, &RefError{Ref: ref, Reason: "workbook rows start at 1"}
	}
	left.Ref.Row--
	right.Ref.Row--
	return left, right, isRange, nil
}
