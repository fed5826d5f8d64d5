// Package output renders named ranges as define lines, reports, JSON and
// workbook defined names.
package output

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
)

// reportNameWidth is the width of the name column of a report.
const reportNameWidth = 30

// WriteDefinitions writes one define line per range, in the given order.
func WriteDefinitions(w io.Writer, ranges []models.NamedRange) error {
	for i := range ranges {
		r := &ranges[i]
		if _, err := fmt.Fprintf(w, "define \"%s\" %s\n", r.Name, r.Definition()); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes a two-column listing of ranges. Output stops at the
// first failed write, e.g. when the reader of a pipe has gone away.
func WriteReport(w io.Writer, ranges []models.NamedRange) error {
	if len(ranges) == 0 {
		_, err := io.WriteString(w, "  No ranges defined\n")
		return err
	}

	if err := reportLine(w, "Name", "Definition"); err != nil {
		return err
	}
	if err := reportLine(w, "----", "----------"); err != nil {
		return err
	}
	for i := range ranges {
		r := &ranges[i]
		if err := reportLine(w, r.Name, r.Definition()); err != nil {
			return err
		}
	}
	return nil
}

func reportLine(w io.Writer, name, definition string) error {
	_, err := fmt.Fprintf(w, "  %s %s\n", runewidth.FillRight(name, reportNameWidth), definition)
	return err
}
