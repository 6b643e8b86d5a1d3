package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// ExtractDepths resolves the time-labelled depth readings from the header
// sheet. Each hour label anchors a row; the reading is the second-to-last
// non-empty cell of that row. Progress6h is derived from the midnight and
// current readings only when both resolve.
func ExtractDepths(f *excelize.File, sheetName string, cfg schema.Depths) (models.DepthSummary, []models.Warning, error) {
	rows, err := SheetRows(f, sheetName)
	if err != nil {
		return models.DepthSummary{}, nil, err
	}

	summary := models.DepthSummary{Readings: make(map[string]*float64, len(cfg.Labels))}
	var warnings []models.Warning

	for _, label := range cfg.Labels {
		summary.Readings[label] = nil

		rowIdx, _, ok := FindAnchor(rows, label)
		if !ok {
			warnings = append(warnings, models.Warning{
				Kind:    "anchor_not_found",
				Sheet:   sheetName,
				Group:   models.GroupDepths,
				Message: fmt.Sprintf("hour label %q not found", label),
			})
			continue
		}

		raw, ok := SecondToLastNonEmpty(rows[rowIdx])
		if !ok {
			warnings = append(warnings, models.Warning{
				Kind:    "malformed_row",
				Sheet:   sheetName,
				Group:   models.GroupDepths,
				Message: fmt.Sprintf("no depth cell on row for label %q", label),
			})
			continue
		}
		depth, ok := CoerceNumber(raw)
		if !ok {
			warnings = append(warnings, models.Warning{
				Kind:    "malformed_row",
				Sheet:   sheetName,
				Group:   models.GroupDepths,
				Message: fmt.Sprintf("depth %q for label %q is not numeric", raw, label),
			})
			continue
		}
		d := depth
		summary.Readings[label] = &d
	}

	resolved := 0
	for _, d := range summary.Readings {
		if d != nil {
			resolved++
		}
	}
	if resolved == 0 {
		return summary, warnings, ErrEmptyResult
	}

	if cfg.Current != "" {
		for _, midnight := range cfg.Midnight {
			if p := summary.Progress(midnight, cfg.Current); p != nil {
				summary.Progress6h = p
				break
			}
		}
	}

	return summary, warnings, nil
}
