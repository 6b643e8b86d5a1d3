package dgrx

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/demo"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/parser"
)

// Extract extracts structured records from a DGR workbook.
//
// Extraction never fails past this function for content reasons: each record
// group that cannot be extracted degrades to the built-in demo records (or
// stays empty when fallback is disabled) and is reported through
// Report.Warnings and Report.Fallbacks. Only an unreadable file, or a group
// failure under Options.Strict, returns an error.
func Extract(path string, opts Options) (*models.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractWorkbook(f, filepath.Base(path), opts)
}

// ExtractWorkbook extracts structured records from an open workbook.
func ExtractWorkbook(f *excelize.File, bookName string, opts Options) (*models.Report, error) {
	sc := opts.effectiveSchema()
	log := opts.effectiveLogger()

	x := &extraction{
		report: &models.Report{BookName: bookName},
		opts:   opts,
		log:    log,
	}

	// Well header fields
	header, warns, err := parser.ExtractHeader(f, sc.Sheets.Header, sc.HeaderFields)
	if failed := x.group(models.GroupHeader, sc.Sheets.Header, warns, err, func() {
		x.report.Well = header
	}, func() {
		x.report.Well = demo.Header()
	}); failed != nil {
		return nil, failed
	}

	// Time-labelled depth readings
	depths, warns, err := parser.ExtractDepths(f, sc.Sheets.Header, sc.Depths)
	if failed := x.group(models.GroupDepths, sc.Sheets.Header, warns, err, func() {
		x.report.Depths = depths
	}, func() {
		x.report.Depths = demo.Depths()
	}); failed != nil {
		return nil, failed
	}

	// Formation tops
	tops, warns, err := parser.ExtractFormations(f, sc.Sheets.Header, sc.Formations)
	if failed := x.group(models.GroupFormations, sc.Sheets.Header, warns, err, func() {
		x.report.Formations = tops
	}, func() {
		x.report.Formations = demo.Formations()
	}); failed != nil {
		return nil, failed
	}

	// Gas composition samples
	gas, warns, err := parser.ExtractGas(f, sc.Sheets.Gas, sc.Gas)
	if failed := x.group(models.GroupGas, sc.Sheets.Gas, warns, err, func() {
		x.report.Gas = gas
	}, func() {
		x.report.Gas = demo.Gas()
	}); failed != nil {
		return nil, failed
	}

	// Lithology intervals
	lith, warns, err := parser.ExtractLithology(f, sc.Sheets.Lithology, sc.Lithology)
	if failed := x.group(models.GroupLithology, sc.Sheets.Lithology, warns, err, func() {
		x.report.Lithology = lith
	}, func() {
		x.report.Lithology = demo.Lithology()
	}); failed != nil {
		return nil, failed
	}

	for kind, n := range x.report.WarningCounts() {
		log.Info("extraction warnings", zap.String("kind", kind), zap.Int("count", n))
	}

	return x.report, nil
}

type extraction struct {
	report *models.Report
	opts   Options
	log    *zap.Logger
}

// group records a group's warnings and applies its result, degrading a
// group-level failure to a warning plus fallback. Under Strict a failure is
// returned instead.
func (x *extraction) group(group, sheet string, warns []models.Warning, err error, apply, fallback func()) error {
	for _, w := range warns {
		x.log.Warn(w.Message,
			zap.String("kind", w.Kind),
			zap.String("sheet", w.Sheet),
			zap.String("group", w.Group))
	}
	x.report.Warnings = append(x.report.Warnings, warns...)

	if err == nil {
		apply()
		return nil
	}

	xerr := NewExtractionError(sheet, group, err)
	if x.opts.Strict {
		return xerr
	}

	x.log.Warn("group extraction failed",
		zap.String("kind", WarningKind(err)),
		zap.String("sheet", sheet),
		zap.String("group", group),
		zap.Error(err))
	x.report.Warnings = append(x.report.Warnings, models.Warning{
		Kind:    WarningKind(err),
		Sheet:   sheet,
		Group:   group,
		Message: xerr.Error(),
	})

	if x.opts.ShouldFallback() {
		fallback()
		x.report.Fallbacks = append(x.report.Fallbacks, group)
	}
	return nil
}
