package rangeref

import "github.com/ukaji3/rangeref-go/pkg/rangeref/models"

// Grid resolves coordinates to cell identities and reports hidden rows
// and columns.
type Grid interface {
	// Lookat returns the identity of the cell at row, col, creating the
	// cell if needed. It never fails.
	Lookat(row, col int) models.CellRef
	RowHidden(row int) bool
	ColHidden(col int) bool
}

// MarkRegistry maps mark characters to grid positions.
type MarkRegistry interface {
	// Mark returns the position of mark c and false if it is unset.
	Mark(c byte) (models.Cell, bool)
}
