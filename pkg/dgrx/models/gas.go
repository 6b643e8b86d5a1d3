package models

// GasSample is one depth-indexed gas-composition reading from the
// "Lithology %, ROP & Gas Reading" sheet. All components are in ppm.
type GasSample struct {
	// Depth is the sample depth in feet.
	Depth float64 `json:"depth"`
	// TotalGas is the total gas reading (TG).
	TotalGas float64 `json:"total_gas"`
	// Methane is the C1 component.
	Methane float64 `json:"methane"`
	// Ethane is the C2 component.
	Ethane float64 `json:"ethane"`
	// Propane is the C3 component.
	Propane float64 `json:"propane"`
	// IsoButane is the iC4 component.
	IsoButane float64 `json:"iso_butane"`
	// NormalButane is the nC4 component.
	NormalButane float64 `json:"normal_butane"`
	// Pentane is the C5 component.
	Pentane float64 `json:"pentane"`
}
