package models

// NamedRange binds a unique name to a normalized rectangular region.
type NamedRange struct {
	// Name is the unique range name.
	Name string `json:"name"`
	// Left is the top-left corner.
	Left Endpoint `json:"left"`
	// Right is the bottom-right corner.
	Right Endpoint `json:"right"`
	// IsRange is false when the name refers to a single cell.
	IsRange bool `json:"is_range"`
}

// Definition renders the reference part of a define line,
// "<left>" or "<left>:<right>".
func (r *NamedRange) Definition() string {
	if !r.IsRange {
		return r.Left.String()
	}
	return r.Left.String() + ":" + r.Right.String()
}
