// Package editor holds the live, editable state of a workout day and
// reconciles it with the day log.
package editor

import "github.com/verte-zerg/olympus/internal/model"

// Row is one set row as typed by the user. Weight and Reps hold raw input.
type Row struct {
	Ordinal int
	Role    model.SetRole
	Weight  string
	Reps    string
}

// Card is one exercise being logged.
type Card struct {
	Name  string
	Notes string
	Rows  []Row
}

// State is the editable view of a single day.
type State struct {
	Day   model.DayKey
	Unit  model.Unit
	Cards []Card
}

func (s State) clone() State {
	out := s
	out.Cards = make([]Card, len(s.Cards))
	for i, c := range s.Cards {
		out.Cards[i] = c
		out.Cards[i].Rows = append([]Row(nil), c.Rows...)
	}
	return out
}

func emptyRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i].Ordinal = i + 1
	}
	return rows
}

func renumber(rows []Row) {
	for i := range rows {
		rows[i].Ordinal = i + 1
	}
}
