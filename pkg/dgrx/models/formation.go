package models

import (
	"encoding/json"
	"fmt"
)

// FaultedOutSentinel is the literal cell value marking a formation absent at
// this well due to faulting. It is a geological statement, not a missing value.
const FaultedOutSentinel = "Faulted out"

// ActualDepth is a measured depth that is either a finite number or the
// "Faulted out" sentinel, never both.
type ActualDepth struct {
	// MD is the measured depth in feet. Meaningless when FaultedOut is set.
	MD float64
	// FaultedOut marks the formation as faulted out at this well.
	FaultedOut bool
}

// IsNumeric reports whether the depth carries a usable number.
func (d ActualDepth) IsNumeric() bool {
	return !d.FaultedOut
}

func (d ActualDepth) String() string {
	if d.FaultedOut {
		return FaultedOutSentinel
	}
	return fmt.Sprintf("%g", d.MD)
}

// MarshalJSON emits a number, or the sentinel string for faulted-out entries.
func (d ActualDepth) MarshalJSON() ([]byte, error) {
	if d.FaultedOut {
		return json.Marshal(FaultedOutSentinel)
	}
	return json.Marshal(d.MD)
}

// UnmarshalJSON accepts either a number or the sentinel string.
func (d *ActualDepth) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != FaultedOutSentinel {
			return fmt.Errorf("actual depth: unexpected string %q", s)
		}
		*d = ActualDepth{FaultedOut: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = ActualDepth{MD: v}
	return nil
}

// FormationTop is one row of the formation-tops correlation table.
// Rows are ordered in drilling order, shallow to deep.
type FormationTop struct {
	// Formation is the formation name (e.g. `A/R "E"`).
	Formation string `json:"formation"`
	// Member is the member name within the formation, empty when none.
	Member string `json:"member,omitempty"`
	// PrognosedMD is the prognosed measured depth in feet.
	PrognosedMD float64 `json:"prognosed_md"`
	// PrognosedTVDSS is the prognosed true vertical depth sub-sea in feet.
	PrognosedTVDSS float64 `json:"prognosed_tvdss"`
	// ActualMD is the actual measured depth, or the faulted-out sentinel.
	ActualMD ActualDepth `json:"actual_md"`
	// ActualTVDSS is the actual TVDSS in feet, nil for faulted-out rows.
	ActualTVDSS *float64 `json:"actual_tvdss,omitempty"`
}
