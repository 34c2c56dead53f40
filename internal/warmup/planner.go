package warmup

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/plates"
)

// ErrInvalidInput is returned when a weight is missing or not positive.
var ErrInvalidInput = errors.New("invalid input")

// PlannedSet is one resolved step of a warm-up plan.
type PlannedSet struct {
	Ordinal int
	Role    Role
	Percent int
	Reps    string
	Target  float64
	Plates  plates.Breakdown
}

// Plan applies the template to the working weight and resolves each target
// through the plate solver for the unit's plate set.
func Plan(workingWeight, barWeight float64, unit model.Unit, tpl Template) ([]PlannedSet, error) {
	if !positive(workingWeight) {
		return nil, fmt.Errorf("%w: working weight must be a positive number", ErrInvalidInput)
	}
	if !positive(barWeight) {
		return nil, fmt.Errorf("%w: bar weight must be a positive number", ErrInvalidInput)
	}
	plateSet := plates.ForUnit(unit)
	sets := make([]PlannedSet, len(tpl.Steps))
	for i, step := range tpl.Steps {
		target := workingWeight * step.Fraction
		sets[i] = PlannedSet{
			Ordinal: i + 1,
			Role:    step.Role,
			Percent: int(math.Round(step.Fraction * 100)),
			Reps:    step.Reps,
			Target:  target,
			Plates:  plates.Solve(target, barWeight, plateSet),
		}
	}
	return sets, nil
}

// FormatWeight rounds to one decimal and drops a trailing ".0".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(math.Round(w*10)/10, 'f', -1, 64)
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
