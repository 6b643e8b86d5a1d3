// Package output serializes extracted reports.
package output

import (
	"encoding/json"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
)

// ToJSON serializes a full report to JSON.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// GroupToJSON serializes a single record group (header map, formation-tops
// slice, etc.) to JSON.
func GroupToJSON(group any, pretty bool) ([]byte, error) {
	return marshal(group, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
