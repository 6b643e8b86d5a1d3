package models

// LithologyInterval is one described interval from the "Lithological
// Description" sheet.
type LithologyInterval struct {
	// Formation is the formation the interval belongs to.
	Formation string `json:"formation"`
	// From is the interval top in feet MD.
	From float64 `json:"from"`
	// To is the interval base in feet MD.
	To float64 `json:"to"`
	// Description is the free-text lithological description.
	Description string `json:"description"`
}
