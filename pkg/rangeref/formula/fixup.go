package formula

import "github.com/ukaji3/rangeref-go/pkg/rangeref/models"

// Rebind normalizes the corners of every range node under n and resolves
// them again through g. Run it after the grid has restructured its cell
// storage; every ref issued before then is stale.
func Rebind(n Node, g Resolver) {
	switch n := n.(type) {
	case *RangeNode:
		n.Left, n.Right = models.Normalize(n.Left, n.Right)
		n.Left.Ref = g.Lookat(n.Left.Ref.Row, n.Left.Ref.Col)
		n.Right.Ref = g.Lookat(n.Right.Ref.Row, n.Right.Ref.Col)
	case *BinaryOpNode:
		Rebind(n.Left, g)
		Rebind(n.Right, g)
	case *UnaryOpNode:
		Rebind(n.Operand, g)
	case *FunctionCallNode:
		for _, arg := range n.Args {
			Rebind(arg, g)
		}
	}
}

// Axis selects rows or columns.
type Axis int

const (
	Rows Axis = iota
	Cols
)

// Edit describes a row or column insertion or deletion. A positive Delta
// inserts Delta lines before At; a negative Delta deletes -Delta lines
// starting at At.
type Edit struct {
	Axis  Axis
	At    int
	Delta int
}

// Shift moves the unanchored corners of every range node under n to
// follow e. Corners are not resolved; call Rebind afterwards.
func Shift(n Node, e Edit) {
	switch n := n.(type) {
	case *RangeNode:
		_ = ShiftCorners(&n.Left, &n.Right, e)
	case *BinaryOpNode:
		Shift(n.Left, e)
		Shift(n.Right, e)
	case *UnaryOpNode:
		Shift(n.Operand, e)
	case *FunctionCallNode:
		for _, arg := range n.Args {
			Shift(arg, e)
		}
	}
}

// ShiftCorners applies e to a normalized pair of corners and reports
// whether either corner moved. Anchored coordinates stay put. A corner
// inside a deleted band moves to the first line after the band (start
// corner) or the last line before it (end corner), never above the start
// corner. If a free corner passes an anchored one, the two coordinates
// trade places along with their anchoring so the pair stays normalized.
func ShiftCorners(left, right *models.Endpoint, e Edit) bool {
	before := [2]models.Endpoint{*left, *right}

	fix := models.FixRow
	lv, rv := &left.Ref.Row, &right.Ref.Row
	if e.Axis == Cols {
		fix = models.FixCol
		lv, rv = &left.Ref.Col, &right.Ref.Col
	}

	if !left.Flags.Has(fix) {
		*lv = shiftIndex(*lv, e, false)
	}
	if !right.Flags.Has(fix) {
		*rv = shiftIndex(*rv, e, true)
		if *rv < *lv {
			*rv = *lv
		}
	}

	if *lv > *rv {
		*lv, *rv = *rv, *lv
		lfix, rfix := left.Flags&fix, right.Flags&fix
		left.Flags = left.Flags&^fix | rfix
		right.Flags = right.Flags&^fix | lfix
	}

	return before != [2]models.Endpoint{*left, *right}
}

func shiftIndex(v int, e Edit, end bool) int {
	if e.Delta >= 0 {
		if v >= e.At {
			return v + e.Delta
		}
		return v
	}

	n := -e.Delta
	switch {
	case v >= e.At+n:
		return v - n
	case v >= e.At:
		if end && e.At > 0 {
			return e.At - 1
		}
		return e.At
	}
	return v
}
