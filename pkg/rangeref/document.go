package rangeref

import (
	"errors"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/parser"
)

// Document owns the named ranges and mark ranges of one open grid.
type Document struct {
	// Ranges holds the named ranges.
	Ranges *NamedRangeTable
	// Marked holds the mark ranges.
	Marked *MarkList

	grid     Grid
	opts     Options
	cursor   models.Cell
	modified int
}

// NewDocument creates an empty document over g. marks may be nil, in which
// case only explicit mark ranges can be created.
func NewDocument(g Grid, marks MarkRegistry, opts Options) *Document {
	d := &Document{
		grid: g,
		opts: opts,
	}
	d.Ranges = NewNamedRangeTable(g, &d.modified, opts.sink())
	d.Marked = NewMarkList(g, marks, &d.cursor, opts)
	return d
}

// Cursor returns the active cell.
func (d *Document) Cursor() models.Cell {
	return d.cursor
}

// MoveCursor sets the active cell.
func (d *Document) MoveCursor(c models.Cell) {
	d.cursor = c
}

// Modified returns the number of changes since the document was created
// or erased.
func (d *Document) Modified() int {
	return d.modified
}

// Load defines every range in defs. It keeps going after a failure and
// returns all failures joined.
func (d *Document) Load(defs []parser.Definition) error {
	var errs []error
	for _, def := range defs {
		if err := d.Ranges.Add(def.Name, def.Left, def.Right, def.IsRange); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Erase drops all ranges and resets the modified counter.
func (d *Document) Erase() {
	d.Ranges.Clean()
	d.Marked.Clear()
	d.cursor = models.Cell{}
	d.modified = 0
}

// Close releases the document's ranges. The document must not be used
// afterwards.
func (d *Document) Close() {
	d.Erase()
	d.grid = nil
}

// Resync resolves every named range corner and every range node in exprs
// against the grid again. It must run after the grid restructures its
// storage.
func (d *Document) Resync(exprs ...formula.Node) {
	d.Ranges.resync()
	for _, n := range exprs {
		formula.Rebind(n, d.grid)
	}
}

// ApplyEdit updates references after the grid applied e. With
// Options.ShiftReferences set, unanchored corners first move to follow the
// inserted or deleted rows or columns.
func (d *Document) ApplyEdit(e formula.Edit, exprs ...formula.Node) {
	if d.opts.ShiftReferences {
		if d.Ranges.shift(e) {
			d.modified++
		}
		for _, n := range exprs {
			formula.Shift(n, e)
		}
	}
	d.Resync(exprs...)
}
