package models

// DepthSummary holds the time-labelled drilling depth readings from the
// report header and the progress derived from them.
type DepthSummary struct {
	// Readings maps a time label ("24:00", "00:00", "06:00") to depth in
	// feet, nil when the reading could not be resolved.
	Readings map[string]*float64 `json:"readings"`
	// Progress6h is the footage drilled between the midnight and 06:00
	// readings. Nil unless both endpoints are present.
	Progress6h *float64 `json:"progress_6h,omitempty"`
}

// Progress returns to − from, or nil when either endpoint is missing.
func (d DepthSummary) Progress(from, to string) *float64 {
	a, b := d.Readings[from], d.Readings[to]
	if a == nil || b == nil {
		return nil
	}
	p := *b - *a
	return &p
}
