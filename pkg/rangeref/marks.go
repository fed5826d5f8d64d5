package rangeref

import (
	"slices"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
)

// MarkList holds ad-hoc rectangles built from marks or explicit corners.
// The most recently created range is first.
type MarkList struct {
	grid         Grid
	marks        MarkRegistry
	cursor       *models.Cell
	ranges       []*models.MarkRange
	autoDeselect bool
	report       func(error)
}

// NewMarkList creates an empty list. cursor is the document's active
// cell; Create records it and moves it.
func NewMarkList(g Grid, marks MarkRegistry, cursor *models.Cell, opts Options) *MarkList {
	return &MarkList{
		grid:         g,
		marks:        marks,
		cursor:       cursor,
		autoDeselect: opts.ShouldAutoDeselect(),
		report:       opts.sink(),
	}
}

// Create builds a range from marks a and b, or from tl and br when both
// marks are models.NoMark. A range built from the same pair of marks as an
// existing one replaces it in place.
func (l *MarkList) Create(a, b byte, tl, br models.Cell) (*models.MarkRange, error) {
	name := markPair(a, b)
	if a != models.NoMark || b != models.NoMark {
		var err error
		if tl, err = l.resolve(a); err != nil {
			return nil, l.fail(name, err)
		}
		if br, err = l.resolve(b); err != nil {
			return nil, l.fail(name, err)
		}
	}
	tl, br = models.Cell{Row: min(tl.Row, br.Row), Col: min(tl.Col, br.Col)},
		models.Cell{Row: max(tl.Row, br.Row), Col: max(tl.Col, br.Col)}

	if l.hidden(tl, br) {
		return nil, l.fail(name, ErrHiddenExtent)
	}

	var r *models.MarkRange
	if a != models.NoMark || b != models.NoMark {
		if idx := l.indexByPair(a, b); idx >= 0 {
			r = l.ranges[idx]
		}
	}
	if r == nil {
		r = &models.MarkRange{}
		l.ranges = slices.Insert(l.ranges, 0, r)
	}

	if l.autoDeselect {
		for _, other := range l.ranges {
			other.Selected = false
		}
	}

	r.TL = tl
	r.BR = br
	r.Marks = [2]byte{a, b}
	r.Selected = true
	if l.cursor != nil {
		r.Origin = *l.cursor
		*l.cursor = tl
	}
	return r, nil
}

// DeselectCurrent clears the selection of the first selected range.
func (l *MarkList) DeselectCurrent() {
	if idx := l.ActiveIndex(); idx >= 0 {
		l.ranges[idx].Selected = false
	}
}

// Active returns the first selected range, or nil.
func (l *MarkList) Active() *models.MarkRange {
	if idx := l.ActiveIndex(); idx >= 0 {
		return l.ranges[idx]
	}
	return nil
}

// ActiveIndex returns the position of the first selected range, or -1.
func (l *MarkList) ActiveIndex() int {
	return slices.IndexFunc(l.ranges, func(r *models.MarkRange) bool {
		return r.Selected
	})
}

// At returns the range at position pos, counting from the most recent.
func (l *MarkList) At(pos int) (*models.MarkRange, bool) {
	if pos < 0 || pos >= len(l.ranges) {
		return nil, false
	}
	return l.ranges[pos], true
}

// RemoveByMark removes every range built from mark m.
func (l *MarkList) RemoveByMark(m byte) {
	l.ranges = slices.DeleteFunc(l.ranges, func(r *models.MarkRange) bool {
		return r.HasMark(m)
	})
}

// Clear removes every range.
func (l *MarkList) Clear() {
	l.ranges = nil
}

// Len returns the number of ranges.
func (l *MarkList) Len() int {
	return len(l.ranges)
}

// All returns a snapshot of the list, most recent first.
func (l *MarkList) All() []models.MarkRange {
	out := make([]models.MarkRange, len(l.ranges))
	for i, r := range l.ranges {
		out[i] = *r
	}
	return out
}

func (l *MarkList) resolve(c byte) (models.Cell, error) {
	if l.marks == nil {
		return models.Cell{}, ErrUnsetMark
	}
	pos, ok := l.marks.Mark(c)
	if !ok {
		return models.Cell{}, ErrUnsetMark
	}
	return pos, nil
}

func (l *MarkList) hidden(tl, br models.Cell) bool {
	for row := tl.Row; row <= br.Row; row++ {
		if l.grid.RowHidden(row) {
			return true
		}
	}
	for col := tl.Col; col <= br.Col; col++ {
		if l.grid.ColHidden(col) {
			return true
		}
	}
	return false
}

func (l *MarkList) indexByPair(a, b byte) int {
	return slices.IndexFunc(l.ranges, func(r *models.MarkRange) bool {
		return (r.Marks[0] == a && r.Marks[1] == b) || (r.Marks[0] == b && r.Marks[1] == a)
	})
}

func (l *MarkList) fail(name string, err error) error {
	rerr := NewRangeError("create", name, err)
	if l.report != nil {
		l.report(rerr)
	}
	return rerr
}

func markPair(a, b byte) string {
	if a == models.NoMark && b == models.NoMark {
		return ""
	}
	return string([]byte{a, b})
}
