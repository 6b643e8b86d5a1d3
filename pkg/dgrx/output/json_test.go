package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
)

func TestToJSON(t *testing.T) {
	report := &models.Report{
		BookName: "dgr.xlsx",
		Well:     models.WellHeader{"Well Name": "Ferdaus-23"},
		Formations: []models.FormationTop{
			{Formation: `A/R "E"`, PrognosedMD: 7951, ActualMD: models.ActualDepth{FaultedOut: true}},
		},
	}

	data, err := ToJSON(report, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded models.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.BookName != "dgr.xlsx" {
		t.Errorf("BookName = %q", decoded.BookName)
	}
	if !decoded.Formations[0].ActualMD.FaultedOut {
		t.Error("Faulted-out sentinel lost in serialization")
	}
	if !strings.Contains(string(data), `"Faulted out"`) {
		t.Errorf("Expected sentinel string in output, got %s", data)
	}
}

func TestToJSONPretty(t *testing.T) {
	report := &models.Report{BookName: "dgr.xlsx"}

	data, err := ToJSON(report, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Error("Pretty output should be indented")
	}
}

func TestGroupToJSON(t *testing.T) {
	samples := []models.GasSample{{Depth: 8796, TotalGas: 137619}}

	data, err := GroupToJSON(samples, false)
	if err != nil {
		t.Fatalf("GroupToJSON failed: %v", err)
	}

	var decoded []models.GasSample
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].TotalGas != 137619 {
		t.Errorf("decoded = %+v", decoded)
	}
}
