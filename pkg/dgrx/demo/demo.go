// Package demo provides the built-in fallback dataset.
//
// When a record group cannot be extracted from a workbook, the extractor
// substitutes the corresponding group from this reference F-23 report so
// downstream consumers always have a complete, well-formed Report to render.
package demo

import "github.com/nbpetco/dgrx-go/pkg/dgrx/models"

// Header returns the reference well-header fields.
func Header() models.WellHeader {
	return models.WellHeader{
		"Well Name":  "Ferdaus-23",
		"Concession": "North Bahariya",
		"Date":       "2025-06-02",
		"Report No.": "15",
		"RKB":        "708",
		"Spud Date":  "2025-05-18",
		"Geologist":  "Soliman Farag",
	}
}

// Depths returns the reference depth readings: 8880 ft at midnight, 8996 ft
// at 06:00, for a 6-hour progress of 116 ft.
func Depths() models.DepthSummary {
	midnight, current, progress := 8880.0, 8996.0, 116.0
	return models.DepthSummary{
		Readings: map[string]*float64{
			"24:00": &midnight,
			"06:00": &current,
		},
		Progress6h: &progress,
	}
}

// Formations returns the reference formation-tops table. A/R "E" is faulted
// out at this well.
func Formations() []models.FormationTop {
	return []models.FormationTop{
		top("DABAA", 1221, 513, 1216, 508),
		top("APOLLONIA", 1960, 1252, 1976, 1268),
		top("KHOMAN", 3711, 3003, 3725, 3017),
		top(`A/R "A"`, 6236, 5528, 6205, 5496),
		top(`A/R "B"`, 7181, 6469, 7127, 6417),
		top(`A/R "C"`, 7642, 6908, 7591, 6872),
		top(`A/R "D"`, 7890, 7139, 7851, 7113),
		faulted(`A/R "E"`, 7951, 7196),
		top(`A/R "F"`, 8045, 7284, 8173, 7397),
		top(`Upper A/R "G"`, 8159, 7390, 8243, 7459),
		top(`Middle A/R "G"`, 8546, 7750, 8520, 7701),
		top(`Lower A/R "G"`, 8765, 7954, 8756, 7908),
		top("Upper Bahariya", 8982, 8156, 8985, 8108),
	}
}

// Gas returns the reference per-zone maximum gas readings.
func Gas() []models.GasSample {
	return []models.GasSample{
		{Depth: 8213, TotalGas: 0, Methane: 0, Ethane: 0, Propane: 0},
		{Depth: 8213, TotalGas: 5529, Methane: 4119, Ethane: 184, Propane: 3},
		{Depth: 8390, TotalGas: 2373, Methane: 1815, Ethane: 145, Propane: 66, IsoButane: 40, NormalButane: 10},
		{Depth: 8529, TotalGas: 26255, Methane: 15955, Ethane: 2974, Propane: 1956, IsoButane: 451, NormalButane: 656, Pentane: 159},
		{Depth: 8796, TotalGas: 137619, Methane: 77029, Ethane: 15269, Propane: 7763, IsoButane: 1900, NormalButane: 1910, Pentane: 1020},
	}
}

// Lithology returns the reference described intervals.
func Lithology() []models.LithologyInterval {
	return []models.LithologyInterval{
		{Formation: "Moghra", From: 70, To: 1035, Description: "SD with clay streaks"},
		{Formation: "Dabaa", From: 1035, To: 1320, Description: "SH with SD & LST streaks"},
		{Formation: "Apollonia", From: 2910, To: 3115, Description: "No return due to complete loss"},
		{Formation: "Khoman", From: 3765, To: 4920, Description: "CHLKY LST"},
		{Formation: `A/R "B"`, From: 7500, To: 7591, Description: "LST with SH streaks"},
		{Formation: `A/R "C"`, From: 7591, To: 7851, Description: "LST with SH, SLTST, SST streaks"},
		{Formation: `A/R "D"`, From: 7851, To: 8173, Description: "LST with SH streaks"},
		{Formation: `A/R "F"`, From: 8210, To: 8243, Description: "LST with SH streak"},
		{Formation: `Upper A/R "G"`, From: 8243, To: 8520, Description: "SH with LST streaks"},
		{Formation: `Middle A/R "G"`, From: 8520, To: 8756, Description: "SH with SLTST, SST, LST streaks"},
		{Formation: `Lower A/R "G"`, From: 8756, To: 8985, Description: "SH with SLTST, SST, LST streaks"},
		{Formation: "Upper Bahariya", From: 8985, To: 8990, Description: "SLTST"},
	}
}

func top(name string, progMD, progTVD, actMD, actTVD float64) models.FormationTop {
	return models.FormationTop{
		Formation:      name,
		PrognosedMD:    progMD,
		PrognosedTVDSS: progTVD,
		ActualMD:       models.ActualDepth{MD: actMD},
		ActualTVDSS:    &actTVD,
	}
}

func faulted(name string, progMD, progTVD float64) models.FormationTop {
	return models.FormationTop{
		Formation:      name,
		PrognosedMD:    progMD,
		PrognosedTVDSS: progTVD,
		ActualMD:       models.ActualDepth{FaultedOut: true},
	}
}
