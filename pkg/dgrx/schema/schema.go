// Package schema defines the declarative extraction schema for DGR workbooks.
//
// Report instances drift in layout between wells and contractors, so every
// anchor label, column offset and default lives in configuration rather than
// in the scanning code. One shared scanning routine in the parser package
// consumes this schema for all field groups.
package schema

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// FieldType describes how a field's cell value is coerced.
type FieldType string

const (
	// TypeText keeps the cell value as trimmed text.
	TypeText FieldType = "text"
	// TypeNumber coerces the cell to a float, rejecting non-numeric content.
	TypeNumber FieldType = "number"
	// TypeDate resolves Excel serial dates to calendar dates.
	TypeDate FieldType = "date"
)

// Field is one keyword-anchored header field.
type Field struct {
	// Name is the output field name in the WellHeader.
	Name string `yaml:"name"`
	// Label is the substring that anchors the field's row (e.g. "Concession:-").
	Label string `yaml:"label"`
	// Offsets are candidate column offsets from the label cell, in priority
	// order. The first offset yielding a plausible value wins.
	Offsets []int `yaml:"offsets"`
	// Type selects the coercion applied to the raw cell text.
	Type FieldType `yaml:"type"`
	// Default is substituted when no offset yields a plausible value.
	// Empty means "N/A".
	Default string `yaml:"default"`
}

// Sheets names the three expected worksheets.
type Sheets struct {
	Header    string `yaml:"header"`
	Lithology string `yaml:"lithology"`
	Gas       string `yaml:"gas"`
}

// Depths configures the time-labelled depth readings.
type Depths struct {
	// Labels are the hour labels scanned for on the header sheet.
	Labels []string `yaml:"labels"`
	// Midnight lists the labels treated as the midnight reading, in
	// priority order ("24:00" and its "00:00" alias).
	Midnight []string `yaml:"midnight"`
	// Current is the label of the most recent reading.
	Current string `yaml:"current"`
}

// FormationColumns are column offsets from the formation-name anchor cell.
type FormationColumns struct {
	Formation      int `yaml:"formation"`
	Member         int `yaml:"member"`
	PrognosedMD    int `yaml:"prognosed_md"`
	PrognosedTVDSS int `yaml:"prognosed_tvdss"`
	ActualMD       int `yaml:"actual_md"`
	ActualTVDSS    int `yaml:"actual_tvdss"`
}

// Formations configures the formation-tops table scan.
type Formations struct {
	// Anchor is the header label locating the table ("Formation Name").
	Anchor string `yaml:"anchor"`
	// HeaderSkip is the number of rows between the anchor row and the
	// first data row.
	HeaderSkip int `yaml:"header_skip"`
	// Terminals end the scan when found in the formation-name column.
	Terminals []string         `yaml:"terminals"`
	Columns   FormationColumns `yaml:"columns"`
}

// GasColumns are column offsets from the total-gas anchor cell. Depth sits
// left of the anchor, so its offset is typically negative.
type GasColumns struct {
	Depth        int `yaml:"depth"`
	TotalGas     int `yaml:"total_gas"`
	Methane      int `yaml:"methane"`
	Ethane       int `yaml:"ethane"`
	Propane      int `yaml:"propane"`
	IsoButane    int `yaml:"iso_butane"`
	NormalButane int `yaml:"normal_butane"`
	Pentane      int `yaml:"pentane"`
}

// Gas configures the gas-composition table scan.
type Gas struct {
	// Anchor is the component header label locating the table ("TG").
	Anchor  string     `yaml:"anchor"`
	Columns GasColumns `yaml:"columns"`
}

// LithologyColumns are column offsets from the lithology anchor cell.
type LithologyColumns struct {
	Formation   int `yaml:"formation"`
	From        int `yaml:"from"`
	To          int `yaml:"to"`
	Description int `yaml:"description"`
}

// Lithology configures the described-interval table scan.
type Lithology struct {
	Anchor     string           `yaml:"anchor"`
	HeaderSkip int              `yaml:"header_skip"`
	Columns    LithologyColumns `yaml:"columns"`
}

// Schema is the full declarative extraction configuration.
type Schema struct {
	Sheets       Sheets     `yaml:"sheets"`
	HeaderFields []Field    `yaml:"header_fields"`
	Depths       Depths     `yaml:"depths"`
	Formations   Formations `yaml:"formations"`
	Gas          Gas        `yaml:"gas"`
	Lithology    Lithology  `yaml:"lithology"`
}

// Default returns the built-in schema matching the reference DGR layout.
func Default() *Schema {
	s, err := Parse(defaultYAML)
	if err != nil {
		// The embedded schema is validated by tests; failing here means a
		// broken build, not bad user input.
		panic(fmt.Sprintf("schema: embedded default is invalid: %v", err))
	}
	return s
}

// Load reads and validates a schema from a YAML file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates schema YAML.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the schema for holes that would make scanning meaningless.
func (s *Schema) Validate() error {
	if s.Sheets.Header == "" {
		return fmt.Errorf("schema: sheets.header must be set")
	}
	if len(s.HeaderFields) == 0 {
		return fmt.Errorf("schema: header_fields must not be empty")
	}
	for i, f := range s.HeaderFields {
		if f.Name == "" || f.Label == "" {
			return fmt.Errorf("schema: header_fields[%d]: name and label must be set", i)
		}
		if len(f.Offsets) == 0 {
			return fmt.Errorf("schema: header field %q: at least one offset required", f.Name)
		}
		for _, off := range f.Offsets {
			if off < 0 {
				return fmt.Errorf("schema: header field %q: negative offset %d", f.Name, off)
			}
		}
		switch f.Type {
		case TypeText, TypeNumber, TypeDate, "":
		default:
			return fmt.Errorf("schema: header field %q: unknown type %q", f.Name, f.Type)
		}
	}
	if len(s.Depths.Labels) == 0 {
		return fmt.Errorf("schema: depths.labels must not be empty")
	}
	if s.Depths.Current != "" && !contains(s.Depths.Labels, s.Depths.Current) {
		return fmt.Errorf("schema: depths.current %q not in depths.labels", s.Depths.Current)
	}
	if s.Formations.Anchor == "" {
		return fmt.Errorf("schema: formations.anchor must be set")
	}
	if s.Formations.HeaderSkip < 1 {
		return fmt.Errorf("schema: formations.header_skip must be >= 1")
	}
	if s.Gas.Anchor == "" {
		return fmt.Errorf("schema: gas.anchor must be set")
	}
	return nil
}

// Kind returns the effective field type, defaulting to text.
func (f Field) Kind() FieldType {
	if f.Type == "" {
		return TypeText
	}
	return f.Type
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
