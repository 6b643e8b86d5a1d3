// Package dgrx extracts structured records from Daily Geological Report
// workbooks.
package dgrx

import (
	"go.uber.org/zap"

	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

// Options configures extraction behavior.
type Options struct {
	// Schema overrides the built-in extraction schema.
	// If nil, schema.Default() is used.
	Schema *schema.Schema
	// Logger receives per-warning log entries and summary counts.
	// If nil, logging is disabled.
	Logger *zap.Logger
	// Fallback controls whether a failed group is substituted with the
	// built-in demo records. If nil, defaults to true.
	Fallback *bool
	// Strict turns a group failure into a returned error instead of a
	// warning plus fallback. Intended for automation that needs to detect
	// sheet-layout drift.
	Strict bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldFallback returns whether failed groups substitute demo records.
func (o Options) ShouldFallback() bool {
	if o.Fallback != nil {
		return *o.Fallback
	}
	return true
}

func (o Options) effectiveSchema() *schema.Schema {
	if o.Schema != nil {
		return o.Schema
	}
	return schema.Default()
}

func (o Options) effectiveLogger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
