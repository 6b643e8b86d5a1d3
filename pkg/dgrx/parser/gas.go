package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// ExtractGas scans the gas-composition table, anchored on the total-gas
// column header. Rows below the anchor are kept only when both depth and
// total gas coerce to numbers; interleaved text rows are dropped without
// ending the scan. Output preserves original row order, duplicate depths
// included. Non-primary components that fail coercion read as zero.
func ExtractGas(f *excelize.File, sheetName string, cfg schema.Gas) ([]models.GasSample, []models.Warning, error) {
	rows, err := SheetRows(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	anchorRow, anchorCol, ok := FindAnchor(rows, cfg.Anchor)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, cfg.Anchor)
	}

	var samples []models.GasSample
	cols := cfg.Columns

	for r := anchorRow + 1; r < len(rows); r++ {
		row := rows[r]

		depth, okDepth := CoerceNumber(CellAt(row, anchorCol+cols.Depth))
		tg, okTG := CoerceNumber(CellAt(row, anchorCol+cols.TotalGas))
		if !okDepth || !okTG {
			continue
		}

		samples = append(samples, models.GasSample{
			Depth:        depth,
			TotalGas:     tg,
			Methane:      numberOrZero(row, anchorCol+cols.Methane),
			Ethane:       numberOrZero(row, anchorCol+cols.Ethane),
			Propane:      numberOrZero(row, anchorCol+cols.Propane),
			IsoButane:    numberOrZero(row, anchorCol+cols.IsoButane),
			NormalButane: numberOrZero(row, anchorCol+cols.NormalButane),
			Pentane:      numberOrZero(row, anchorCol+cols.Pentane),
		})
	}

	if len(samples) == 0 {
		return nil, nil, ErrEmptyResult
	}
	return samples, nil, nil
}

func numberOrZero(row []string, col int) float64 {
	v, ok := CoerceNumber(CellAt(row, col))
	if !ok {
		return 0
	}
	return v
}
