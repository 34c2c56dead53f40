package daylog

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/olympus/internal/model"
)

// ErrUnknownDay is returned for a day key without a default exercise list.
var ErrUnknownDay = errors.New("unknown day")

var defaults = map[model.DayKey][]string{
	model.DayPush: {
		"Incline Bench Press",
		"Overhead Press",
		"Weighted Dips",
		"Lateral Raises",
		"Triceps Pushdown (Optional)",
	},
	model.DayLegs: {
		"Squat",
		"Romanian Deadlift",
		"Leg Press (Optional)",
		"Standing Calf Raises",
	},
	model.DayPull: {
		"Weighted Chin-ups",
		"Pendlay Row",
		"Barbell Curl",
		"Face Pulls (Optional)",
	},
}

// Defaults returns the built-in exercise names for day.
func Defaults(day model.DayKey) ([]string, error) {
	names, ok := defaults[day]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return append([]string(nil), names...), nil
}

// ParseDay validates a day key against the built-in split.
func ParseDay(s string) (model.DayKey, error) {
	day := model.DayKey(s)
	if _, ok := defaults[day]; !ok {
		return "", fmt.Errorf("%w: %q (want push, legs or pull)", ErrUnknownDay, s)
	}
	return day, nil
}
