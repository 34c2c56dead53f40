package standards

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is returned when a required measurement is missing or not positive.
var ErrInvalidInput = errors.New("invalid input")

// Result is one classified metric.
type Result struct {
	Metric Metric
	Ratio  float64
	Band   Band
}

// Value formats the ratio the way the metric is displayed.
func (r Result) Value() string {
	if r.Metric.Display == DisplayPercent {
		return strconv.FormatFloat(r.Ratio*100, 'f', 1, 64) + r.Metric.Suffix
	}
	return strconv.FormatFloat(r.Ratio, 'f', 2, 64) + r.Metric.Suffix
}

// Physique holds body measurements in a common length unit. Zero means absent.
type Physique struct {
	Height float64
	Waist  float64
	Chest  float64
	Arms   float64
}

// Strength holds bodyweight and 5-rep loads in a common weight unit. Chins is
// the load added to bodyweight. Zero means absent.
type Strength struct {
	Bodyweight float64
	Incline    float64
	Chins      float64
	OHP        float64
	Curl       float64
}

// EvaluatePhysique requires height and waist; chest and arms are optional.
func EvaluatePhysique(p Physique) ([]Result, error) {
	if !present(p.Height) || !present(p.Waist) {
		return nil, fmt.Errorf("%w: height and waist are required", ErrInvalidInput)
	}
	results := []Result{classified(WaistHeight, p.Waist/p.Height)}
	if present(p.Chest) {
		results = append(results, classified(ChestWaist, p.Chest/p.Waist))
	}
	if present(p.Arms) {
		results = append(results, classified(ArmsWaist, p.Arms/p.Waist))
	}
	return results, nil
}

// EvaluateStrength requires bodyweight; lifts that are absent are skipped.
func EvaluateStrength(s Strength) ([]Result, error) {
	if !present(s.Bodyweight) {
		return nil, fmt.Errorf("%w: bodyweight is required", ErrInvalidInput)
	}
	lifts := []struct {
		metric Metric
		load   float64
	}{
		{InclineBW, s.Incline},
		{ChinsBW, s.Chins},
		{OHPBW, s.OHP},
		{CurlBW, s.Curl},
	}
	var results []Result
	for _, lift := range lifts {
		if !present(lift.load) {
			continue
		}
		results = append(results, classified(lift.metric, lift.load/s.Bodyweight))
	}
	return results, nil
}

func classified(m Metric, ratio float64) Result {
	return Result{Metric: m, Ratio: ratio, Band: Classify(ratio, m)}
}

func present(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
