// Package models defines the value types shared by the range and mark tables.
package models

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Cell is a plain 0-based grid coordinate.
type Cell struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// Name returns the plain cell name, e.g. "B3" for row 3, column 1.
func (c Cell) Name() string {
	return ColumnName(c.Col) + strconv.Itoa(c.Row)
}

// CellRef is the identity of one grid cell as issued by a grid.
// Refs issued under an older storage epoch are stale and must be
// resolved again before they are compared.
type CellRef struct {
	Cell
	// Epoch is the grid storage epoch the ref was issued under.
	Epoch uint64 `json:"-"`
}

// AxisFlags marks the anchored axes of an endpoint.
type AxisFlags uint8

const (
	// FixRow anchors the row ("$" before the row number).
	FixRow AxisFlags = 1 << iota
	// FixCol anchors the column ("$" before the column letters).
	FixCol
)

// Has reports whether all bits of f are set.
func (a AxisFlags) Has(f AxisFlags) bool {
	return a&f == f
}

// Endpoint is one corner of a range together with its anchoring.
type Endpoint struct {
	Ref   CellRef   `json:"cell"`
	Flags AxisFlags `json:"-"`
}

// String renders the endpoint as [$]<col>[$]<row>.
func (e Endpoint) String() string {
	s := ""
	if e.Flags.Has(FixCol) {
		s += "$"
	}
	s += ColumnName(e.Ref.Col)
	if e.Flags.Has(FixRow) {
		s += "$"
	}
	return s + strconv.Itoa(e.Ref.Row)
}

// ColumnName converts a 0-based column index to its alphabetic name
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func ColumnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}

// Normalize orders two corners so that the first holds the minimum row and
// column and the second the maximum. Each axis flag stays with the
// coordinate it was written on; on ties the first corner supplies the
// minimum.
func Normalize(a, b Endpoint) (Endpoint, Endpoint) {
	var lo, hi Endpoint

	if a.Ref.Row <= b.Ref.Row {
		lo.Ref.Row, lo.Flags = a.Ref.Row, a.Flags&FixRow
		hi.Ref.Row, hi.Flags = b.Ref.Row, b.Flags&FixRow
	} else {
		lo.Ref.Row, lo.Flags = b.Ref.Row, b.Flags&FixRow
		hi.Ref.Row, hi.Flags = a.Ref.Row, a.Flags&FixRow
	}

	if a.Ref.Col <= b.Ref.Col {
		lo.Ref.Col, lo.Flags = a.Ref.Col, lo.Flags|a.Flags&FixCol
		hi.Ref.Col, hi.Flags = b.Ref.Col, hi.Flags|b.Flags&FixCol
	} else {
		lo.Ref.Col, lo.Flags = b.Ref.Col, lo.Flags|b.Flags&FixCol
		hi.Ref.Col, hi.Flags = a.Ref.Col, hi.Flags|a.Flags&FixCol
	}

	return lo, hi
}
