package output

import (
	"encoding/json"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
)

// RangeView is the JSON form of a named range.
type RangeView struct {
	// Name is the range name.
	Name string `json:"name"`
	// Definition is the reference text, e.g. "A$0:C4".
	Definition string `json:"definition"`
	// TL is the top-left cell.
	TL models.Cell `json:"tl"`
	// BR is the bottom-right cell.
	BR models.Cell `json:"br"`
	// IsRange is false for single-cell names.
	IsRange bool `json:"is_range"`
}

// ToJSON serializes ranges as a JSON array.
func ToJSON(ranges []models.NamedRange, pretty bool) ([]byte, error) {
	views := make([]RangeView, 0, len(ranges))
	for i := range ranges {
		r := &ranges[i]
		views = append(views, RangeView{
			Name:       r.Name,
			Definition: r.Definition(),
			TL:         r.Left.Ref.Cell,
			BR:         r.Right.Ref.Cell,
			IsRange:    r.IsRange,
		})
	}

	if pretty {
		return json.MarshalIndent(views, "", "  ")
	}
	return json.Marshal(views)
}
