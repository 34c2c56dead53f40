// Package standards classifies physique and strength ratios into bands.
package standards

import "math"

// Band is a qualitative tier produced by a threshold lookup.
type Band int

const (
	BandBelow Band = iota
	BandGood
	BandGreat
	BandGodlike
)

// String returns the display label of the band.
func (b Band) String() string {
	switch b {
	case BandGood:
		return "Good"
	case BandGreat:
		return "Great"
	case BandGodlike:
		return "Godlike"
	default:
		return "Below"
	}
}

// Direction tells which way a ratio improves.
type Direction int

const (
	HigherBetter Direction = iota
	LowerBetter
)

// Display selects how a ratio is shown to the user.
type Display int

const (
	// DisplayPercent renders ratio*100 with one decimal.
	DisplayPercent Display = iota
	// DisplayRatio renders the raw ratio with two decimals.
	DisplayRatio
)

// Metric is one entry of the fixed threshold table.
type Metric struct {
	Key       string
	Label     string
	Direction Direction
	Good      float64
	Great     float64
	Godlike   float64
	Display   Display
	Suffix    string
}

var (
	WaistHeight = Metric{Key: "waist-height", Label: "Waist / Height", Direction: LowerBetter, Good: 0.47, Great: 0.46, Godlike: 0.45, Display: DisplayPercent, Suffix: "%"}
	ChestWaist  = Metric{Key: "chest-waist", Label: "Chest / Waist", Direction: HigherBetter, Good: 1.30, Great: 1.35, Godlike: 1.40, Display: DisplayRatio, Suffix: "×"}
	ArmsWaist   = Metric{Key: "arms-waist", Label: "Arms / Waist", Direction: HigherBetter, Good: 0.46, Great: 0.48, Godlike: 0.50, Display: DisplayPercent, Suffix: "%"}
	InclineBW   = Metric{Key: "incline", Label: "Incline Bench (5 reps)", Direction: HigherBetter, Good: 0.90, Great: 1.10, Godlike: 1.25, Display: DisplayRatio, Suffix: "× BW"}
	ChinsBW     = Metric{Key: "chins", Label: "Weighted Chins (5 reps)", Direction: HigherBetter, Good: 0.30, Great: 0.45, Godlike: 0.60, Display: DisplayPercent, Suffix: "% BW"}
	OHPBW       = Metric{Key: "ohp", Label: "Overhead Press (5 reps)", Direction: HigherBetter, Good: 0.65, Great: 0.80, Godlike: 0.90, Display: DisplayRatio, Suffix: "× BW"}
	CurlBW      = Metric{Key: "curl", Label: "Barbell Curl (5 reps)", Direction: HigherBetter, Good: 0.45, Great: 0.55, Godlike: 0.65, Display: DisplayRatio, Suffix: "× BW"}
)

// Metrics lists every metric in table order.
var Metrics = []Metric{WaistHeight, ChestWaist, ArmsWaist, InclineBW, ChinsBW, OHPBW, CurlBW}

// Classify maps a ratio to its band. Boundaries are inclusive in the
// improving direction. A ratio that is not a finite positive number is Below.
func Classify(ratio float64, m Metric) Band {
	if !validRatio(ratio) {
		return BandBelow
	}
	if m.Direction == LowerBetter {
		switch {
		case ratio <= m.Godlike:
			return BandGodlike
		case ratio <= m.Great:
			return BandGreat
		case ratio <= m.Good:
			return BandGood
		}
		return BandBelow
	}
	switch {
	case ratio >= m.Godlike:
		return BandGodlike
	case ratio >= m.Great:
		return BandGreat
	case ratio >= m.Good:
		return BandGood
	}
	return BandBelow
}

func validRatio(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
