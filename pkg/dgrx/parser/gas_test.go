package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

const gasSheet = "Lithology %, ROP & Gas Reading"

func newGasSheet(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", gasSheet)

	headers := []string{"Depth", "TG", "C1", "C2", "C3", "iC4", "nC4", "C5"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(gasSheet, cell, h)
	}

	rows := [][]interface{}{
		{8213, 5529, 4119, 184, 3, 0, 0, 0},
		{"no returns due to complete loss", "", "", "", "", "", "", ""},
		{8390, 2373, 1815, 145, 66, 40, 10, 0},
		{8390, 2410, 1830, 150, 70, 42, 11, 0}, // duplicate depth, must be kept
		{"core point", "-", "", "", "", "", "", ""},
		{8796, 137619, 77029, 15269, 7763, 1900, 1910, 1020},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, 2+i)
			f.SetCellValue(gasSheet, cell, v)
		}
	}

	return f
}

func TestExtractGas(t *testing.T) {
	f := saveAndOpen(t, newGasSheet(t))

	sc := schema.Default()
	samples, _, err := ExtractGas(f, gasSheet, sc.Gas)
	if err != nil {
		t.Fatalf("ExtractGas failed: %v", err)
	}

	// Text rows dropped, numeric rows kept in original order, duplicates included
	if len(samples) != 4 {
		t.Fatalf("Expected 4 samples, got %d", len(samples))
	}
	depths := []float64{8213, 8390, 8390, 8796}
	for i, want := range depths {
		if samples[i].Depth != want {
			t.Errorf("samples[%d].Depth = %v, expected %v", i, samples[i].Depth, want)
		}
	}

	last := samples[3]
	if last.TotalGas != 137619 || last.Methane != 77029 || last.Pentane != 1020 {
		t.Errorf("samples[3] = %+v, expected TG 137619, C1 77029, C5 1020", last)
	}
}

func TestExtractGasMissingComponent(t *testing.T) {
	f := newGasSheet(t)
	// A non-primary component that fails coercion reads as zero
	f.SetCellValue(gasSheet, "E2", "tr")
	f2 := saveAndOpen(t, f)

	sc := schema.Default()
	samples, _, err := ExtractGas(f2, gasSheet, sc.Gas)
	if err != nil {
		t.Fatalf("ExtractGas failed: %v", err)
	}
	if samples[0].Propane != 0 {
		t.Errorf("samples[0].Propane = %v, expected 0 for non-numeric cell", samples[0].Propane)
	}
	if samples[0].TotalGas != 5529 {
		t.Errorf("samples[0].TotalGas = %v, expected 5529", samples[0].TotalGas)
	}
}

func TestExtractGasPrimaryFieldGate(t *testing.T) {
	f := newGasSheet(t)
	// Total gas failing coercion drops the whole row
	f.SetCellValue(gasSheet, "B2", "n/r")
	f2 := saveAndOpen(t, f)

	sc := schema.Default()
	samples, _, err := ExtractGas(f2, gasSheet, sc.Gas)
	if err != nil {
		t.Fatalf("ExtractGas failed: %v", err)
	}
	for _, s := range samples {
		if s.Depth == 8213 {
			t.Error("row with non-numeric total gas must be dropped")
		}
	}
}

func TestExtractGasAnchorMissing(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", gasSheet)
	f.SetCellValue(gasSheet, "A1", "Depth")
	f2 := saveAndOpen(t, f)

	sc := schema.Default()
	_, _, err := ExtractGas(f2, gasSheet, sc.Gas)
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("Expected ErrAnchorNotFound, got %v", err)
	}
}

func TestExtractGasEmptyResult(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", gasSheet)
	f.SetCellValue(gasSheet, "A1", "Depth")
	f.SetCellValue(gasSheet, "B1", "TG")
	f.SetCellValue(gasSheet, "A2", "no numeric rows here")
	f2 := saveAndOpen(t, f)

	sc := schema.Default()
	_, _, err := ExtractGas(f2, gasSheet, sc.Gas)
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("Expected ErrEmptyResult, got %v", err)
	}
}
