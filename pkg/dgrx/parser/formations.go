package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// ExtractFormations scans the formation-tops correlation table. The block is
// anchored on the "Formation Name" header; data starts HeaderSkip rows below
// and runs until a blank formation name or a terminal marker ("T.D.").
//
// An actual-MD cell is either numeric or the "Faulted out" sentinel. Rows
// with neither are malformed and skipped, never misread as one or the other.
func ExtractFormations(f *excelize.File, sheetName string, cfg schema.Formations) ([]models.FormationTop, []models.Warning, error) {
	rows, err := SheetRows(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	anchorRow, anchorCol, ok := FindAnchor(rows, cfg.Anchor)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, cfg.Anchor)
	}

	var (
		tops     []models.FormationTop
		warnings []models.Warning
	)
	cols := cfg.Columns

	for r := anchorRow + cfg.HeaderSkip; r < len(rows); r++ {
		row := rows[r]
		name := CellAt(row, anchorCol+cols.Formation)
		if name == "" || isTerminal(name, cfg.Terminals) {
			break
		}
		if isHeaderArtifact(name, cfg.Anchor) {
			continue
		}

		top := models.FormationTop{
			Formation: name,
			Member:    CellAt(row, anchorCol+cols.Member),
		}

		progMD, okMD := CoerceNumber(CellAt(row, anchorCol+cols.PrognosedMD))
		progTVD, okTVD := CoerceNumber(CellAt(row, anchorCol+cols.PrognosedTVDSS))
		if !okMD || !okTVD {
			warnings = append(warnings, models.Warning{
				Kind:    "malformed_row",
				Sheet:   sheetName,
				Group:   models.GroupFormations,
				Message: fmt.Sprintf("row %d (%s): prognosed depths not numeric", r+1, name),
			})
			continue
		}
		top.PrognosedMD = progMD
		top.PrognosedTVDSS = progTVD

		actualRaw := CellAt(row, anchorCol+cols.ActualMD)
		switch {
		case strings.EqualFold(actualRaw, models.FaultedOutSentinel):
			top.ActualMD = models.ActualDepth{FaultedOut: true}
		default:
			md, ok := CoerceNumber(actualRaw)
			if !ok {
				warnings = append(warnings, models.Warning{
					Kind:    "malformed_row",
					Sheet:   sheetName,
					Group:   models.GroupFormations,
					Message: fmt.Sprintf("row %d (%s): actual MD %q neither numeric nor sentinel", r+1, name, actualRaw),
				})
				continue
			}
			top.ActualMD = models.ActualDepth{MD: md}
		}

		if tvd, ok := CoerceNumber(CellAt(row, anchorCol+cols.ActualTVDSS)); ok {
			top.ActualTVDSS = &tvd
		}

		tops = append(tops, top)
	}

	if len(tops) == 0 {
		return nil, warnings, ErrEmptyResult
	}
	return tops, warnings, nil
}

func isTerminal(name string, terminals []string) bool {
	for _, t := range terminals {
		if strings.EqualFold(strings.TrimSpace(name), t) {
			return true
		}
	}
	return false
}

// isHeaderArtifact filters repeated header rows that leak into the data
// block on some report layouts.
func isHeaderArtifact(name, anchor string) bool {
	n := normalize(name)
	return strings.Contains(n, normalize(anchor)) ||
		n == "md" || n == "tvdss" || strings.HasPrefix(n, "(ft")
}
