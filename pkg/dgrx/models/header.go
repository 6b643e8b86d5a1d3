// Package models defines data structures for Daily Geological Report extraction.
package models

// MissingValue is returned for header fields that could not be resolved.
const MissingValue = "N/A"

// WellHeader maps a header field name (e.g. "Concession", "Report No.",
// "RKB") to its extracted value.
type WellHeader map[string]string

// Get returns the value for a field, or MissingValue when absent or blank.
func (h WellHeader) Get(field string) string {
	if v, ok := h[field]; ok && v != "" {
		return v
	}
	return MissingValue
}
