package models

// Group names used for warnings and fallback accounting.
const (
	GroupHeader     = "header"
	GroupDepths     = "depths"
	GroupFormations = "formations"
	GroupGas        = "gas"
	GroupLithology  = "lithology"
)

// Warning records a recoverable extraction problem. Warnings are surfaced to
// the caller instead of failing the extraction.
type Warning struct {
	// Kind is the failure kind ("sheet_not_found", "anchor_not_found",
	// "malformed_row", "empty_result").
	Kind string `json:"kind"`
	// Sheet is the sheet the problem occurred in, when known.
	Sheet string `json:"sheet,omitempty"`
	// Group is the record group being extracted.
	Group string `json:"group"`
	// Message describes the problem.
	Message string `json:"message"`
}

// Report is the structured result of extracting one DGR workbook.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Well holds the extracted well-header fields.
	Well WellHeader `json:"well"`
	// Depths holds the time-labelled depth readings.
	Depths DepthSummary `json:"depths"`
	// Formations is the formation-tops table in drilling order.
	Formations []FormationTop `json:"formations"`
	// Gas is the gas-composition table in original row order.
	Gas []GasSample `json:"gas"`
	// Lithology is the described-interval table.
	Lithology []LithologyInterval `json:"lithology,omitempty"`
	// Fallbacks lists the groups that were substituted with demo data.
	Fallbacks []string `json:"fallbacks,omitempty"`
	// Warnings lists recoverable problems encountered during extraction.
	Warnings []Warning `json:"warnings,omitempty"`
}

// CurrentFormation returns the deepest non-faulted formation top, i.e. the
// formation currently being drilled. Nil when no numeric top exists.
func (r *Report) CurrentFormation() *FormationTop {
	for i := len(r.Formations) - 1; i >= 0; i-- {
		if r.Formations[i].ActualMD.IsNumeric() {
			return &r.Formations[i]
		}
	}
	return nil
}

// UsedFallback reports whether the named group was substituted with demo data.
func (r *Report) UsedFallback(group string) bool {
	for _, g := range r.Fallbacks {
		if g == group {
			return true
		}
	}
	return false
}

// WarningCounts tallies warnings by kind.
func (r *Report) WarningCounts() map[string]int {
	counts := make(map[string]int)
	for _, w := range r.Warnings {
		counts[w.Kind]++
	}
	return counts
}
