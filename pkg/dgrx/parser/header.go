package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// ExtractHeader scans the header sheet for every schema field. A field whose
// label is never found, or whose offsets all yield implausible values,
// resolves to its default and produces a warning; it never fails the group.
// The group fails only when the sheet itself is missing or unreadable.
func ExtractHeader(f *excelize.File, sheetName string, fields []schema.Field) (models.WellHeader, []models.Warning, error) {
	rows, err := SheetRows(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	header := make(models.WellHeader, len(fields))
	var warnings []models.Warning
	resolved := 0

	for _, field := range fields {
		rowIdx, labelCol, ok := FindAnchor(rows, field.Label)
		if !ok {
			header[field.Name] = fieldDefault(field)
			warnings = append(warnings, models.Warning{
				Kind:    "anchor_not_found",
				Sheet:   sheetName,
				Group:   models.GroupHeader,
				Message: fmt.Sprintf("label %q not found for field %q", field.Label, field.Name),
			})
			continue
		}

		value, ok := CellAtOffsets(rows[rowIdx], labelCol, field.Offsets, field.Kind())
		if !ok {
			header[field.Name] = fieldDefault(field)
			warnings = append(warnings, models.Warning{
				Kind:    "malformed_row",
				Sheet:   sheetName,
				Group:   models.GroupHeader,
				Message: fmt.Sprintf("no plausible value at offsets %v for field %q", field.Offsets, field.Name),
			})
			continue
		}
		header[field.Name] = value
		resolved++
	}

	// A header where nothing resolved is indistinguishable from the wrong
	// workbook; let the caller fall back rather than render all-N/A fields.
	if resolved == 0 {
		return header, warnings, ErrEmptyResult
	}
	return header, warnings, nil
}

func fieldDefault(f schema.Field) string {
	if f.Default != "" {
		return f.Default
	}
	return models.MissingValue
}
