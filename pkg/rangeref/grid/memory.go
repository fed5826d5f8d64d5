// Package grid provides grid and mark registry implementations for
// rangeref documents.
package grid

import "github.com/ukaji3/rangeref-go/pkg/rangeref/models"

// Memory is an in-memory grid: it only tracks hidden rows and columns and
// the storage epoch that cell identities are issued under.
type Memory struct {
	hiddenRows map[int]bool
	hiddenCols map[int]bool
	epoch      uint64
}

// NewMemory creates an empty in-memory grid.
func NewMemory() *Memory {
	return &Memory{
		hiddenRows: make(map[int]bool),
		hiddenCols: make(map[int]bool),
	}
}

// Lookat returns the identity of the cell at row, col.
func (m *Memory) Lookat(row, col int) models.CellRef {
	return models.CellRef{Cell: models.Cell{Row: row, Col: col}, Epoch: m.epoch}
}

// RowHidden reports whether row is hidden.
func (m *Memory) RowHidden(row int) bool {
	return m.hiddenRows[row]
}

// ColHidden reports whether col is hidden.
func (m *Memory) ColHidden(col int) bool {
	return m.hiddenCols[col]
}

// HideRow hides or shows row.
func (m *Memory) HideRow(row int, hidden bool) {
	if hidden {
		m.hiddenRows[row] = true
	} else {
		delete(m.hiddenRows, row)
	}
}

// HideCol hides or shows col.
func (m *Memory) HideCol(col int, hidden bool) {
	if hidden {
		m.hiddenCols[col] = true
	} else {
		delete(m.hiddenCols, col)
	}
}

// Restructure starts a new storage epoch. Every identity issued before
// is stale afterwards.
func (m *Memory) Restructure() {
	m.epoch++
}

// Valid reports whether ref was issued under the current epoch.
func (m *Memory) Valid(ref models.CellRef) bool {
	return ref.Epoch == m.epoch
}
