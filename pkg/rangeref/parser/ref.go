// Package parser reads cell references, define lines and workbook defined names.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

// RefError reports a malformed cell reference.
type RefError struct {
	Ref    string
	Reason string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Ref, e.Reason)
}

// ParseEndpoint parses a reference like "B3", "$B3", "B$3" or "$B$3".
// Rows are taken as written (0-based grid rows). The returned endpoint
// carries no grid epoch; callers resolve it through their grid.
func ParseEndpoint(s string) (models.Endpoint, error) {
	var ep models.Endpoint
	rest := s

	if strings.HasPrefix(rest, "$") {
		ep.Flags |= models.FixCol
		rest = rest[1:]
	}

	i := 0
	for i < len(rest) && isLetter(rest[i]) {
		i++
	}
	if i == 0 {
		return ep, &RefError{Ref: s, Reason: "missing column"}
	}
	col, err := excelize.ColumnNameToNumber(rest[:i])
	if err != nil {
		return ep, &RefError{Ref: s, Reason: err.Error()}
	}
	rest = rest[i:]

	if strings.HasPrefix(rest, "$") {
		ep.Flags |= models.FixRow
		rest = rest[1:]
	}
	if rest == "" || strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return ep, &RefError{Ref: s, Reason: "missing row"}
	}
	row, err := strconv.Atoi(rest)
	if err != nil {
		return ep, &RefError{Ref: s, Reason: "row out of range"}
	}

	ep.Ref.Cell = models.Cell{Row: row, Col: col - 1}
	return ep, nil
}

// ParseRange parses "<ref>" or "<ref>:<ref>". isRange is true only for
// the two-endpoint form; for a single reference right equals left.
func ParseRange(s string) (left, right models.Endpoint, isRange bool, err error) {
	first, second, found := strings.Cut(s, ":")
	left, err = ParseEndpoint(first)
	if err != nil {
		return left, right, false, err
	}
	if !found {
		return left, left, false, nil
	}
	right, err = ParseEndpoint(second)
	if err != nil {
		return left, right, false, err
	}
	return left, right, true, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
