package rangeref

import (
	"io"
	"slices"
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/output"
)

// NamedRangeTable binds unique names to rectangular regions of a grid.
// Entries are kept sorted ascending by name.
type NamedRangeTable struct {
	grid     Grid
	ranges   []*models.NamedRange
	modified *int
	report   func(error)
}

// NewNamedRangeTable creates an empty table over g. Every structural
// change increments *modified; failures are passed to report.
func NewNamedRangeTable(g Grid, modified *int, report func(error)) *NamedRangeTable {
	return &NamedRangeTable{
		grid:     g,
		modified: modified,
		report:   report,
	}
}

// Add defines name as the rectangle spanned by left and right. The corners
// are normalized so that the stored left endpoint holds the minimum row and
// column; anchoring flags follow the coordinate they were written on.
func (t *NamedRangeTable) Add(name string, left, right models.Endpoint, isRange bool) error {
	left, right = models.Normalize(left, right)
	left.Ref = t.grid.Lookat(left.Ref.Row, left.Ref.Col)
	right.Ref = t.grid.Lookat(right.Ref.Row, right.Ref.Col)

	if err := ValidateName(name); err != nil {
		return t.fail(name, err)
	}

	pos, found := t.search(name)
	if found {
		return t.fail(name, ErrDuplicateName)
	}

	t.ranges = slices.Insert(t.ranges, pos, &models.NamedRange{
		Name:    name,
		Left:    left,
		Right:   right,
		IsRange: isRange,
	})
	t.touch()
	return nil
}

// Remove deletes the range whose corners are exactly the cells spanned by
// a and b. It does nothing when no range matches.
func (t *NamedRangeTable) Remove(a, b models.Cell) {
	lref := t.grid.Lookat(min(a.Row, b.Row), min(a.Col, b.Col))
	rref := t.grid.Lookat(max(a.Row, b.Row), max(a.Col, b.Col))

	idx := t.indexByRefs(lref, rref)
	if idx < 0 {
		return
	}
	t.ranges = slices.Delete(t.ranges, idx, idx+1)
	t.touch()
}

// Clean drops every range. It is used when the document is erased.
func (t *NamedRangeTable) Clean() {
	t.ranges = nil
}

// Lookup searches by name, comparing the first |n| bytes of name with the
// first |n| bytes of each candidate. A negative n accepts any candidate
// with that prefix; otherwise the candidate's name must be exactly n bytes
// long. On a match Lookup returns the range and 0. On a miss it returns
// the range the name would be inserted after (nil at the head) and a
// non-zero comparison result.
func (t *NamedRangeTable) Lookup(name string, n int) (*models.NamedRange, int) {
	exact := n >= 0
	if n < 0 {
		n = -n
	}
	key := name[:min(n, len(name))]

	// First candidate whose prefix does not sort before key.
	i, _ := slices.BinarySearchFunc(t.ranges, key, func(r *models.NamedRange, k string) int {
		return strings.Compare(prefix(r.Name, len(k)), k)
	})
	for j := i; j < len(t.ranges) && prefix(t.ranges[j].Name, len(key)) == key; j++ {
		if !exact || len(t.ranges[j].Name) == len(key) {
			return t.ranges[j], 0
		}
	}

	pos, _ := t.search(key)
	if pos == 0 {
		return nil, -1
	}
	return t.ranges[pos-1], strings.Compare(key, t.ranges[pos-1].Name)
}

// Find returns the range named exactly name.
func (t *NamedRangeTable) Find(name string) (*models.NamedRange, bool) {
	r, cmp := t.Lookup(name, len(name))
	return r, cmp == 0 && r != nil
}

// FindPrefix returns the first range, in name order, whose name starts
// with p.
func (t *NamedRangeTable) FindPrefix(p string) (*models.NamedRange, bool) {
	r, cmp := t.Lookup(p, -len(p))
	return r, cmp == 0 && r != nil
}

// FindByRefs returns the range whose corners are exactly left and right.
func (t *NamedRangeTable) FindByRefs(left, right models.CellRef) (*models.NamedRange, bool) {
	idx := t.indexByRefs(left, right)
	if idx < 0 {
		return nil, false
	}
	return t.ranges[idx], true
}

// Definition returns the reference text bound to name, e.g. "A0:$C$4".
func (t *NamedRangeTable) Definition(name string) (string, bool) {
	r, ok := t.Find(name)
	if !ok {
		return "", false
	}
	return r.Definition(), true
}

// NameFor returns the name bound to exactly r1,c1:r2,c2, or the plain cell
// names "<cell>:<cell>" when there is none.
func (t *NamedRangeTable) NameFor(r1, c1, r2, c2 int) string {
	if r, ok := t.FindByRefs(t.grid.Lookat(r1, c1), t.grid.Lookat(r2, c2)); ok {
		return r.Name
	}
	return models.Cell{Row: r1, Col: c1}.Name() + ":" + models.Cell{Row: r2, Col: c2}.Name()
}

// Serialize writes one define line per range in name order.
func (t *NamedRangeTable) Serialize(w io.Writer) error {
	return output.WriteDefinitions(w, t.All())
}

// Report writes the interactive range listing. It stops at the first
// failed write.
func (t *NamedRangeTable) Report(w io.Writer) error {
	return output.WriteReport(w, t.All())
}

// IsEmpty reports whether no range is defined.
func (t *NamedRangeTable) IsEmpty() bool {
	return len(t.ranges) == 0
}

// Len returns the number of defined ranges.
func (t *NamedRangeTable) Len() int {
	return len(t.ranges)
}

// All returns a snapshot of every range in name order.
func (t *NamedRangeTable) All() []models.NamedRange {
	out := make([]models.NamedRange, len(t.ranges))
	for i, r := range t.ranges {
		out[i] = *r
	}
	return out
}

// resync resolves every corner again after the grid restructured.
func (t *NamedRangeTable) resync() {
	for _, r := range t.ranges {
		r.Left.Ref = t.grid.Lookat(r.Left.Ref.Row, r.Left.Ref.Col)
		r.Right.Ref = t.grid.Lookat(r.Right.Ref.Row, r.Right.Ref.Col)
	}
}

// shift moves unanchored corners to follow a row or column edit and
// reports whether any range changed.
func (t *NamedRangeTable) shift(e formula.Edit) bool {
	moved := false
	for _, r := range t.ranges {
		if formula.ShiftCorners(&r.Left, &r.Right, e) {
			moved = true
		}
	}
	return moved
}

func (t *NamedRangeTable) search(name string) (int, bool) {
	return slices.BinarySearchFunc(t.ranges, name, func(r *models.NamedRange, k string) int {
		return strings.Compare(r.Name, k)
	})
}

func (t *NamedRangeTable) indexByRefs(left, right models.CellRef) int {
	return slices.IndexFunc(t.ranges, func(r *models.NamedRange) bool {
		return r.Left.Ref == left && r.Right.Ref == right
	})
}

func (t *NamedRangeTable) touch() {
	if t.modified != nil {
		*t.modified++
	}
}

func (t *NamedRangeTable) fail(name string, err error) error {
	rerr := NewRangeError("define", name, err)
	if t.report != nil {
		t.report(rerr)
	}
	return rerr
}

func prefix(s string, n int) string {
	return s[:min(n, len(s))]
}
