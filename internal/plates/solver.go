// Package plates decomposes a barbell load into plates per side.
package plates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/olympus/internal/model"
)

// Epsilon absorbs floating point drift when comparing weights.
const Epsilon = 1e-6

// ErrInvalidInput is returned when a target or bar weight is not a finite
// positive number.
var ErrInvalidInput = errors.New("invalid input")

// CheckLoad validates a target and bar weight before solving.
func CheckLoad(target, bar float64) error {
	if !positive(target) {
		return fmt.Errorf("%w: target weight must be a positive number", ErrInvalidInput)
	}
	if !positive(bar) {
		return fmt.Errorf("%w: bar weight must be a positive number", ErrInvalidInput)
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// PlateSet is a descending list of available plate denominations.
type PlateSet []float64

var (
	MetricPlates   = PlateSet{25, 20, 15, 10, 5, 2.5, 1.25}
	ImperialPlates = PlateSet{45, 35, 25, 10, 5, 2.5}
)

// ForUnit returns the plate set used for the unit.
func ForUnit(u model.Unit) PlateSet {
	if u == model.UnitImperial {
		return ImperialPlates
	}
	return MetricPlates
}

// Validate checks that denominations are positive and strictly descending.
func (p PlateSet) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("plate set is empty")
	}
	for i, denom := range p {
		if denom <= 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
			return fmt.Errorf("plate %d must be a positive weight, got %v", i, denom)
		}
		if i > 0 && denom >= p[i-1] {
			return fmt.Errorf("plates must be strictly descending: %v after %v", denom, p[i-1])
		}
	}
	return nil
}

// Smallest returns the lightest denomination.
func (p PlateSet) Smallest() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// PlateCount is how many plates of one denomination go on each side.
type PlateCount struct {
	Weight float64
	Count  int
}

// Breakdown lists plates per side, heaviest first. Empty means bar only.
type Breakdown []PlateCount

// BarOnly reports whether no plates are loaded.
func (b Breakdown) BarOnly() bool {
	return len(b) == 0
}

// PerSide returns the load on one sleeve.
func (b Breakdown) PerSide() float64 {
	total := 0.0
	for _, pc := range b {
		total += pc.Weight * float64(pc.Count)
	}
	return total
}

// Total returns the loaded bar weight.
func (b Breakdown) Total(bar float64) float64 {
	return bar + 2*b.PerSide()
}

// String renders the breakdown as "25×2, 10×1" or "bar only".
func (b Breakdown) String() string {
	if b.BarOnly() {
		return "bar only"
	}
	parts := make([]string, len(b))
	for i, pc := range b {
		parts[i] = strconv.FormatFloat(pc.Weight, 'f', -1, 64) + "×" + strconv.Itoa(pc.Count)
	}
	return strings.Join(parts, ", ")
}

// Solve greedily fills each side from the heaviest plate down. A remainder
// smaller than the lightest plate is dropped, so the loaded total never
// exceeds target but may fall short of it. Loads rejected by CheckLoad
// solve to bar only.
func Solve(target, bar float64, plates PlateSet) Breakdown {
	if CheckLoad(target, bar) != nil || target < bar-Epsilon {
		return nil
	}
	perSide := math.Max(0, target-bar) / 2
	var out Breakdown
	for _, denom := range plates {
		count := int(math.Floor((perSide + Epsilon) / denom))
		if count <= 0 {
			continue
		}
		out = append(out, PlateCount{Weight: denom, Count: count})
		perSide -= float64(count) * denom
	}
	return out
}
