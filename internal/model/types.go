// Package model defines shared data structures.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Unit selects the weight system used for bar defaults and plate sets.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// ParseUnit accepts the canonical names and the kg/lb shorthands.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "kg":
		return UnitMetric, nil
	case "imperial", "lb", "lbs":
		return UnitImperial, nil
	default:
		return "", fmt.Errorf("unknown unit %q (want metric or imperial)", s)
	}
}

// UnmarshalJSON maps stored values, including the "kg"/"lb" shorthands of
// older records, onto the canonical units. Unknown values decode as metric.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode unit: %w", err)
	}
	parsed, err := ParseUnit(raw)
	if err != nil {
		parsed = UnitMetric
	}
	*u = parsed
	return nil
}

// DefaultBarWeight returns the empty barbell weight for the unit.
func (u Unit) DefaultBarWeight() float64 {
	if u == UnitImperial {
		return 45
	}
	return 20
}

// Symbol returns the short display suffix.
func (u Unit) Symbol() string {
	if u == UnitImperial {
		return "lb"
	}
	return "kg"
}

// DayKey identifies a workout split day.
type DayKey string

const (
	DayPush DayKey = "push"
	DayLegs DayKey = "legs"
	DayPull DayKey = "pull"
)

// Days lists the built-in split days in rotation order.
var Days = []DayKey{DayPush, DayLegs, DayPull}

// SetRole labels a logged set. The zero value means unset.
type SetRole string

const (
	RoleUnset    SetRole = ""
	RoleNone     SetRole = "none"
	RoleWarmUp   SetRole = "warm-up"
	RoleWorking  SetRole = "working"
	RoleTopSet   SetRole = "top-set"
	RoleBackoff  SetRole = "backoff"
	RoleFailure  SetRole = "failure"
	RoleDropSet  SetRole = "drop-set"
	RoleOptional SetRole = "optional"
)

// SetRoles is the fixed label set in display order, starting with unset.
var SetRoles = []SetRole{
	RoleUnset, RoleNone, RoleWarmUp, RoleWorking, RoleTopSet,
	RoleBackoff, RoleFailure, RoleDropSet, RoleOptional,
}

// ValidSetRoles is the canonical set of accepted role strings.
var ValidSetRoles = map[SetRole]bool{
	RoleUnset: true, RoleNone: true, RoleWarmUp: true, RoleWorking: true,
	RoleTopSet: true, RoleBackoff: true, RoleFailure: true, RoleDropSet: true,
	RoleOptional: true,
}

// Next cycles to the following role, wrapping back to unset.
func (r SetRole) Next() SetRole {
	for i, role := range SetRoles {
		if role == r {
			return SetRoles[(i+1)%len(SetRoles)]
		}
	}
	return RoleUnset
}

// SetEntry is a single logged set. Zero weight or reps means absent.
type SetEntry struct {
	Ordinal int     `json:"setNumber"`
	Role    SetRole `json:"type"`
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
}

// Complete reports whether the set carries both a load and a rep count.
func (s SetEntry) Complete() bool {
	return s.Weight > 0 && s.Reps > 0
}

// ExerciseEntry holds the sets logged for one exercise.
type ExerciseEntry struct {
	Name  string     `json:"name"`
	Notes string     `json:"notes"`
	Sets  []SetEntry `json:"sets"`
}

// IsOptional reports whether the name marks an optional variant.
func (e ExerciseEntry) IsOptional() bool {
	return IsOptionalName(e.Name)
}

// IsOptionalName reports whether an exercise name carries the "(Optional)" marker.
func IsOptionalName(name string) bool {
	return strings.Contains(strings.ToLower(name), "(optional)")
}

// DayLogRecord is one saved snapshot of a workout day. Records are never
// modified after they are appended.
type DayLogRecord struct {
	ID        string          `json:"id,omitempty"`
	Day       DayKey          `json:"day"`
	Date      time.Time       `json:"date"`
	Unit      Unit            `json:"unit"`
	Exercises []ExerciseEntry `json:"exercises"`
}

// Exercise returns the exercise with an exactly matching name.
func (r DayLogRecord) Exercise(name string) (ExerciseEntry, bool) {
	for _, ex := range r.Exercises {
		if ex.Name == name {
			return ex, true
		}
	}
	return ExerciseEntry{}, false
}
