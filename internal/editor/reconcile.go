package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
)

// Reconstruct seeds the editor for day from history. With a prior record the
// cards follow that record's exercises in stored order, each pre-filled from
// the latest sets logged for it; without one the day's default exercises are
// used with two empty rows each. Optional exercises keep the weight but not
// the reps.
func Reconstruct(history daylog.History, day model.DayKey, unit model.Unit) (State, error) {
	state := State{Day: day, Unit: unit}

	last, ok := history.LastForDay(day)
	if !ok || len(last.Exercises) == 0 {
		names, err := daylog.Defaults(day)
		if err != nil {
			return State{}, err
		}
		for _, name := range names {
			state.Cards = append(state.Cards, Card{Name: name, Rows: emptyRows(2)})
		}
		return state, nil
	}

	for _, ex := range last.Exercises {
		card := Card{Name: ex.Name, Notes: ex.Notes}
		sets := ex.Sets
		if prior, found := history.LastExercise(day, ex.Name); found {
			sets = prior.Sets
		}
		optional := model.IsOptionalName(ex.Name)
		for i, set := range sets {
			row := Row{Ordinal: i + 1, Role: set.Role}
			if set.Weight > 0 {
				row.Weight = formatNumber(set.Weight)
			}
			if set.Reps > 0 && !optional {
				row.Reps = strconv.Itoa(set.Reps)
			}
			card.Rows = append(card.Rows, row)
		}
		if len(card.Rows) == 0 {
			card.Rows = emptyRows(2)
		}
		state.Cards = append(state.Cards, card)
	}
	return state, nil
}

// Gather converts the state into the exercises to persist. Only complete
// sets are kept, numbered 1..N in row order, and a card is dropped when it
// has no name, no complete set and no notes.
func Gather(s State) []model.ExerciseEntry {
	out := make([]model.ExerciseEntry, 0, len(s.Cards))
	for _, card := range s.Cards {
		name := strings.TrimSpace(card.Name)
		notes := strings.TrimSpace(card.Notes)
		var sets []model.SetEntry
		for _, row := range card.Rows {
			if set := ParseRow(row); set.Complete() {
				set.Ordinal = len(sets) + 1
				sets = append(sets, set)
			}
		}
		if name == "" && len(sets) == 0 && notes == "" {
			continue
		}
		if sets == nil {
			sets = []model.SetEntry{}
		}
		out = append(out, model.ExerciseEntry{Name: name, Notes: notes, Sets: sets})
	}
	return out
}

// Record builds the day record for the current state.
func Record(s State) model.DayLogRecord {
	return model.DayLogRecord{
		Day:       s.Day,
		Unit:      s.Unit,
		Exercises: Gather(s),
	}
}

// ParseRow interprets raw row input. Unparseable or non-positive values are
// treated as absent.
func ParseRow(r Row) model.SetEntry {
	set := model.SetEntry{Ordinal: r.Ordinal, Role: r.Role}
	if w, err := strconv.ParseFloat(strings.TrimSpace(r.Weight), 64); err == nil && w > 0 && !math.IsInf(w, 0) {
		set.Weight = w
	}
	if reps, err := strconv.Atoi(strings.TrimSpace(r.Reps)); err == nil && reps > 0 {
		set.Reps = reps
	}
	return set
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
