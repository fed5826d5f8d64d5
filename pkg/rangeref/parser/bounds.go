package parser

import (
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the smallest rectangle covering every non-empty cell
// of sheet, in grid coordinates. It returns nil when the sheet is empty.
func DataBounds(f *excelize.File, sheet string) (*models.CustomRange, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var area *models.CustomRange
	for r, row := range rows {
		first, last := -1, -1
		for c, value := range row {
			if value != "" {
				if first < 0 {
					first = c
				}
				last = c
			}
		}
		if first < 0 {
			continue
		}

		if area == nil {
			area = models.NewCustomRange(r, first, r, last)
			continue
		}
		area.BRRow = r
		area.TLCol = min(area.TLCol, first)
		area.BRCol = max(area.BRCol, last)
	}

	return area, nil
}
