// Package daylog persists workout day records and answers "last time"
// queries used to pre-fill the log editor.
package daylog

import (
	"time"

	"github.com/verte-zerg/olympus/internal/model"
)

// History is the stored record sequence, oldest first.
type History []model.DayLogRecord

// LastForDay returns the most recent record for day.
func (h History) LastForDay(day model.DayKey) (model.DayLogRecord, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Day == day {
			return h[i], true
		}
	}
	return model.DayLogRecord{}, false
}

// LastExercise returns the exercise from the most recent record for day that
// has an exactly matching name with at least one set.
func (h History) LastExercise(day model.DayKey, name string) (model.ExerciseEntry, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Day != day {
			continue
		}
		for _, ex := range h[i].Exercises {
			if ex.Name == name && len(ex.Sets) > 0 {
				return ex, true
			}
		}
	}
	return model.ExerciseEntry{}, false
}

// ForDay returns records for day, newest first. A non-positive limit returns all.
func (h History) ForDay(day model.DayKey, limit int) History {
	var out History
	for i := len(h) - 1; i >= 0; i-- {
		if day != "" && h[i].Day != day {
			continue
		}
		out = append(out, h[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Point is the heaviest set of an exercise in one record.
type Point struct {
	Date   time.Time
	Weight float64
	Reps   int
}

// Progress returns the heaviest set of name per record for day, oldest first.
// Records without a set for the exercise are skipped.
func (h History) Progress(day model.DayKey, name string) []Point {
	var out []Point
	for _, rec := range h {
		if rec.Day != day {
			continue
		}
		ex, ok := rec.Exercise(name)
		if !ok || len(ex.Sets) == 0 {
			continue
		}
		best := ex.Sets[0]
		for _, s := range ex.Sets[1:] {
			if s.Weight > best.Weight || (s.Weight == best.Weight && s.Reps > best.Reps) {
				best = s
			}
		}
		out = append(out, Point{Date: rec.Date, Weight: best.Weight, Reps: best.Reps})
	}
	return out
}
