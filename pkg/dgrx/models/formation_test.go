package models

import (
	"encoding/json"
	"testing"
)

func TestActualDepthJSON(t *testing.T) {
	numeric := ActualDepth{MD: 8985}
	b, err := json.Marshal(numeric)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != "8985" {
		t.Errorf("numeric marshal = %s, expected 8985", b)
	}

	faulted := ActualDepth{FaultedOut: true}
	b, err = json.Marshal(faulted)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"Faulted out"` {
		t.Errorf("faulted marshal = %s, expected \"Faulted out\"", b)
	}

	var d ActualDepth
	if err := json.Unmarshal([]byte(`"Faulted out"`), &d); err != nil {
		t.Fatalf("Unmarshal sentinel failed: %v", err)
	}
	if !d.FaultedOut {
		t.Error("Expected FaultedOut after unmarshal")
	}

	if err := json.Unmarshal([]byte(`"Washed out"`), &d); err == nil {
		t.Error("Unexpected string should not unmarshal")
	}

	if err := json.Unmarshal([]byte(`7851`), &d); err != nil {
		t.Fatalf("Unmarshal number failed: %v", err)
	}
	if d.FaultedOut || d.MD != 7851 {
		t.Errorf("Unmarshal number = %+v", d)
	}
}

func TestCurrentFormation(t *testing.T) {
	tvd := 8108.0
	r := &Report{
		Formations: []FormationTop{
			{Formation: `A/R "D"`, ActualMD: ActualDepth{MD: 7851}},
			{Formation: `A/R "E"`, ActualMD: ActualDepth{FaultedOut: true}},
			{Formation: "Upper Bahariya", ActualMD: ActualDepth{MD: 8985}, ActualTVDSS: &tvd},
		},
	}

	current := r.CurrentFormation()
	if current == nil || current.Formation != "Upper Bahariya" {
		t.Fatalf("CurrentFormation = %+v, expected Upper Bahariya", current)
	}
}

func TestCurrentFormationAllFaulted(t *testing.T) {
	r := &Report{
		Formations: []FormationTop{
			{Formation: `A/R "E"`, ActualMD: ActualDepth{FaultedOut: true}},
		},
	}
	if got := r.CurrentFormation(); got != nil {
		t.Errorf("CurrentFormation = %+v, expected nil when every top is faulted", got)
	}
}

func TestWellHeaderGet(t *testing.T) {
	h := WellHeader{"RKB": "708", "Member": ""}
	if got := h.Get("RKB"); got != "708" {
		t.Errorf("Get(RKB) = %q", got)
	}
	if got := h.Get("Member"); got != MissingValue {
		t.Errorf("Get(Member) = %q, expected %q", got, MissingValue)
	}
	if got := h.Get("absent"); got != MissingValue {
		t.Errorf("Get(absent) = %q, expected %q", got, MissingValue)
	}
}
