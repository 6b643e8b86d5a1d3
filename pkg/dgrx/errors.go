package dgrx

import (
	"errors"
	"fmt"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/parser"
)

// Failure taxonomy. All are recoverable: the extractor surfaces them as
// warnings and substitutes defaults rather than failing the run.
var (
	// ErrSheetNotFound indicates an expected sheet name is absent from the workbook.
	ErrSheetNotFound = parser.ErrSheetNotFound
	// ErrAnchorNotFound indicates a keyword label was never located on its sheet.
	ErrAnchorNotFound = parser.ErrAnchorNotFound
	// ErrMalformedRow indicates numeric coercion failed on fields presumed numeric.
	ErrMalformedRow = parser.ErrMalformedRow
	// ErrEmptyResult indicates a table scan terminated with zero records.
	ErrEmptyResult = parser.ErrEmptyResult
)

// WarningKind returns the warning-log kind string for a taxonomy error,
// or "error" for anything outside the taxonomy.
func WarningKind(err error) string {
	switch {
	case errors.Is(err, ErrSheetNotFound):
		return "sheet_not_found"
	case errors.Is(err, ErrAnchorNotFound):
		return "anchor_not_found"
	case errors.Is(err, ErrMalformedRow):
		return "malformed_row"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	default:
		return "error"
	}
}

// ExtractionError represents a recoverable error in one record group.
type ExtractionError struct {
	SheetName string
	Group     string // "header", "depths", "formations", "gas", "lithology"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Group, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, group string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Group:     group,
		Err:       err,
	}
}
