package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// ExtractLithology scans the described-interval table on the lithology
// sheet. Data runs from HeaderSkip rows below the anchor until a blank
// formation cell. Intervals without numeric bounds are skipped.
func ExtractLithology(f *excelize.File, sheetName string, cfg schema.Lithology) ([]models.LithologyInterval, []models.Warning, error) {
	rows, err := SheetRows(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	anchorRow, anchorCol, ok := FindAnchor(rows, cfg.Anchor)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, cfg.Anchor)
	}

	var (
		intervals []models.LithologyInterval
		warnings  []models.Warning
	)
	cols := cfg.Columns

	for r := anchorRow + cfg.HeaderSkip; r < len(rows); r++ {
		row := rows[r]
		formation := CellAt(row, anchorCol+cols.Formation)
		if formation == "" {
			break
		}

		from, okFrom := CoerceNumber(CellAt(row, anchorCol+cols.From))
		to, okTo := CoerceNumber(CellAt(row, anchorCol+cols.To))
		if !okFrom || !okTo {
			warnings = append(warnings, models.Warning{
				Kind:    "malformed_row",
				Sheet:   sheetName,
				Group:   models.GroupLithology,
				Message: fmt.Sprintf("row %d (%s): interval bounds not numeric", r+1, formation),
			})
			continue
		}

		intervals = append(intervals, models.LithologyInterval{
			Formation:   formation,
			From:        from,
			To:          to,
			Description: CellAt(row, anchorCol+cols.Description),
		})
	}

	if len(intervals) == 0 {
		return nil, warnings, ErrEmptyResult
	}
	return intervals, warnings, nil
}
