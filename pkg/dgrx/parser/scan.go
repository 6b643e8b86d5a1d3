// Package parser implements keyword-anchored scanning of DGR worksheets.
//
// Nothing in a DGR workbook has a fixed address. Rows are located by
// searching for a label substring, values by probing column offsets from the
// label cell. All coercion is silent: a cell that does not parse yields a
// missing value, never an error.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// Recoverable group-level failures. The orchestrator maps these onto
// warnings and fallback records.
var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrAnchorNotFound = errors.New("anchor not found")
	ErrMalformedRow   = errors.New("malformed row")
	ErrEmptyResult    = errors.New("empty result")
)

// SheetRows loads all rows of a sheet, mapping excelize's missing-sheet
// error onto ErrSheetNotFound.
func SheetRows(f *excelize.File, sheetName string) ([][]string, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, ErrSheetNotFound
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindAnchor locates the first row containing label as a substring and
// returns the row index and the column of the matching cell. Matching is
// case-insensitive and whitespace-tolerant. First match only.
func FindAnchor(rows [][]string, label string) (rowIdx, colIdx int, ok bool) {
	needle := normalize(label)
	if needle == "" {
		return 0, 0, false
	}
	for r, row := range rows {
		for c, cell := range row {
			if strings.Contains(normalize(cell), needle) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// CellAt returns the trimmed cell at col, or "" when the row is shorter.
// Rows from GetRows are ragged, so every access goes through here.
func CellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// CellAtOffsets probes column offsets from the label cell in priority order
// and returns the first plausible value. Plausibility depends on the field
// kind: text must be non-empty, numbers and dates must coerce.
func CellAtOffsets(row []string, labelCol int, offsets []int, kind schema.FieldType) (string, bool) {
	for _, off := range offsets {
		raw := CellAt(row, labelCol+off)
		if raw == "" {
			continue
		}
		switch kind {
		case schema.TypeNumber:
			if v, ok := CoerceNumber(raw); ok {
				return strconv.FormatFloat(v, 'f', -1, 64), true
			}
		case schema.TypeDate:
			if v, ok := coerceDate(raw); ok {
				return v, true
			}
		default:
			return raw, true
		}
	}
	return "", false
}

// CoerceNumber silently coerces spreadsheet cell text to a float. Thousands
// separators and trailing unit tokens ("ft", the foot tick) are stripped.
// Returns false for anything non-numeric, including NaN and infinities.
func CoerceNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "'")
	for _, unit := range []string{"ft", "FT", "Ft"} {
		if strings.HasSuffix(s, unit) {
			s = strings.TrimSpace(strings.TrimSuffix(s, unit))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Excel serial day numbers for 1950-01-01 and 2100-01-01 against the
// 1899-12-30 epoch. Serials outside this window are not treated as dates.
const (
	serialMin = 18264
	serialMax = 73051
)

// coerceDate resolves an Excel serial to a calendar date. Cell text that is
// not a serial in the plausibility window passes through unchanged, so
// already-formatted dates survive.
func coerceDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s, true
	}
	days := int(serial)
	if days < serialMin || days > serialMax {
		return s, true
	}
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, days).Format("2006-01-02"), true
}

// SecondToLastNonEmpty returns the second-to-last non-empty cell of a row.
// Trailing cells in DGR rows are often blank or label repeats, so the value
// of interest sits one in from the end.
func SecondToLastNonEmpty(row []string) (string, bool) {
	var nonEmpty []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(cell))
		}
	}
	if len(nonEmpty) < 2 {
		return "", false
	}
	return nonEmpty[len(nonEmpty)-2], true
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
