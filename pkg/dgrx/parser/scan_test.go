package parser

import (
	"testing"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{" 8996 ", 8996, true},
		{"137,619", 137619, true},
		{"708 ft", 708, true},
		{"8996'", 8996, true},
		{"hello", 0, false},
		{"", 0, false},
		{"Faulted out", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		result, ok := CoerceNumber(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("CoerceNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		// Excel serials inside the plausibility window
		{"45810", "2025-06-02", true},
		{"45795", "2025-05-18", true},
		// already formatted or out-of-window values pass through
		{"2025-06-02", "2025-06-02", true},
		{"17", "17", true},
		{"99999", "99999", true},
		{"", "", false},
	}

	for _, tt := range tests {
		result, ok := coerceDate(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("coerceDate(%q) = (%q, %v), expected (%q, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestFindAnchor(t *testing.T) {
	rows := [][]string{
		{"North Bahariya Petroleum Company"},
		{"", "Well  Name:-", "", "Ferdaus-23"},
		{"Concession:-", "", "North Bahariya"},
		{"Concession:-", "", "duplicate row, must not match"},
	}

	r, c, ok := FindAnchor(rows, "Well Name:-")
	if !ok || r != 1 || c != 1 {
		t.Errorf("FindAnchor(Well Name:-) = (%d, %d, %v), expected (1, 1, true)", r, c, ok)
	}

	// First match only
	r, _, ok = FindAnchor(rows, "Concession:-")
	if !ok || r != 2 {
		t.Errorf("FindAnchor(Concession:-) = row %d, expected first match at row 2", r)
	}

	// Case-insensitive
	if _, _, ok := FindAnchor(rows, "concession:-"); !ok {
		t.Error("FindAnchor should match case-insensitively")
	}

	if _, _, ok := FindAnchor(rows, "RKB:-"); ok {
		t.Error("FindAnchor should not match an absent label")
	}
}

func TestCellAt(t *testing.T) {
	row := []string{"a", " b ", ""}
	if got := CellAt(row, 1); got != "b" {
		t.Errorf("CellAt(row, 1) = %q, expected \"b\"", got)
	}
	if got := CellAt(row, 5); got != "" {
		t.Errorf("CellAt out of range = %q, expected empty", got)
	}
	if got := CellAt(row, -1); got != "" {
		t.Errorf("CellAt negative = %q, expected empty", got)
	}
}

func TestSecondToLastNonEmpty(t *testing.T) {
	v, ok := SecondToLastNonEmpty([]string{"Depth at 06:00", "", "8996", "ft", ""})
	if !ok || v != "8996" {
		t.Errorf("SecondToLastNonEmpty = (%q, %v), expected (\"8996\", true)", v, ok)
	}

	if _, ok := SecondToLastNonEmpty([]string{"only one"}); ok {
		t.Error("SecondToLastNonEmpty should fail with fewer than two non-empty cells")
	}
}
