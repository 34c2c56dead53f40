// Package warmup builds warm-up set prescriptions from a working weight.
package warmup

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTemplate is returned when a template key is not registered.
var ErrUnknownTemplate = errors.New("unknown warm-up template")

// Role distinguishes ramp-up sets from the working set.
type Role string

const (
	RoleWarmup  Role = "warmup"
	RoleWorking Role = "working"
)

// Step is one prescribed set as a fraction of the working weight.
type Step struct {
	Role     Role
	Fraction float64
	Reps     string
}

// Template is a named warm-up schedule.
type Template struct {
	Key   string
	Name  string
	Steps []Step
}

var registry = map[string]Template{
	"olympus": {
		Key:  "olympus",
		Name: "Olympus (2 ramp sets)",
		Steps: []Step{
			{Role: RoleWarmup, Fraction: 0.30, Reps: "8"},
			{Role: RoleWarmup, Fraction: 0.50, Reps: "4"},
			{Role: RoleWorking, Fraction: 1.00, Reps: "5-8"},
		},
	},
	"soviet": {
		Key:  "soviet",
		Name: "Soviet (heavy singles)",
		Steps: []Step{
			{Role: RoleWarmup, Fraction: 0.40, Reps: "5"},
			{Role: RoleWarmup, Fraction: 0.70, Reps: "2"},
			{Role: RoleWorking, Fraction: 1.00, Reps: "3-5"},
		},
	},
	"ramp": {
		Key:  "ramp",
		Name: "Classic ramp",
		Steps: []Step{
			{Role: RoleWarmup, Fraction: 0.40, Reps: "5"},
			{Role: RoleWarmup, Fraction: 0.60, Reps: "3"},
			{Role: RoleWarmup, Fraction: 0.80, Reps: "1"},
			{Role: RoleWorking, Fraction: 1.00, Reps: "work sets"},
		},
	},
}

// DefaultTemplate is used when no template is configured.
const DefaultTemplate = "olympus"

// Lookup returns the registered template for key.
func Lookup(key string) (Template, error) {
	tpl, ok := registry[key]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
	}
	return tpl, nil
}

// Templates returns every registered template sorted by key.
func Templates() []Template {
	out := make([]Template, 0, len(registry))
	for _, tpl := range registry {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
