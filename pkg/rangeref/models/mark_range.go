package models

// NoMark is the mark sentinel used by ranges built from explicit corners.
const NoMark byte = 0

// MarkRange is an ad-hoc rectangle derived from two marks or two corners.
type MarkRange struct {
	// TL is the top-left corner.
	TL Cell `json:"tl"`
	// BR is the bottom-right corner.
	BR Cell `json:"br"`
	// Marks holds the source mark characters, NoMark for explicit ranges.
	Marks [2]byte `json:"marks"`
	// Origin is the cursor position recorded when the range was created.
	Origin Cell `json:"origin"`
	// Selected is set on the range the user is currently working with.
	Selected bool `json:"selected"`
}

// HasMark reports whether c is one of the range's source marks.
func (r *MarkRange) HasMark(c byte) bool {
	return r.Marks[0] == c || r.Marks[1] == c
}

// CustomRange is a standalone rectangle with no table membership.
type CustomRange struct {
	// TLRow is the top row (0-based).
	TLRow int `json:"tl_row"`
	// TLCol is the left column (0-based).
	TLCol int `json:"tl_col"`
	// BRRow is the bottom row (0-based, inclusive).
	BRRow int `json:"br_row"`
	// BRCol is the right column (0-based, inclusive).
	BRCol int `json:"br_col"`
}

// NewCustomRange returns a rectangle with the given corners. The corners
// are stored as given.
func NewCustomRange(tlrow, tlcol, brrow, brcol int) *CustomRange {
	return &CustomRange{
		TLRow: tlrow,
		TLCol: tlcol,
		BRRow: brrow,
		BRCol: brcol,
	}
}
