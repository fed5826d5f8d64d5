package grid

import "github.com/ukaji3/rangeref-go/pkg/rangeref/models"

// Marks is a map-backed mark registry.
type Marks struct {
	positions map[byte]models.Cell
}

// NewMarks creates an empty registry.
func NewMarks() *Marks {
	return &Marks{positions: make(map[byte]models.Cell)}
}

// Set records mark c at pos.
func (m *Marks) Set(c byte, pos models.Cell) {
	m.positions[c] = pos
}

// Unset forgets mark c.
func (m *Marks) Unset(c byte) {
	delete(m.positions, c)
}

// Mark returns the position of mark c.
func (m *Marks) Mark(c byte) (models.Cell, bool) {
	pos, ok := m.positions[c]
	return pos, ok
}
