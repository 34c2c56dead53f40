package editor

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/olympus/internal/model"
)

var (
	// ErrNoSuchCard is returned when an edit targets a missing exercise card.
	ErrNoSuchCard = errors.New("no such exercise")
	// ErrNoSuchSet is returned when an edit targets a missing set row.
	ErrNoSuchSet = errors.New("no such set")
)

// Edit is a single user change to a day's state.
type Edit interface {
	apply(s *State) error
}

// Apply returns the state that results from e. s is left untouched; on
// error s is returned unchanged.
func Apply(s State, e Edit) (State, error) {
	next := s.clone()
	if err := e.apply(&next); err != nil {
		return s, err
	}
	return next, nil
}

// SetWeight replaces the raw weight text of a row.
type SetWeight struct {
	Card, Row int
	Value     string
}

// SetReps replaces the raw reps text of a row.
type SetReps struct {
	Card, Row int
	Value     string
}

// SetRole changes the label of a row.
type SetRole struct {
	Card, Row int
	Role      model.SetRole
}

// AddSet appends an empty row to a card.
type AddSet struct {
	Card int
}

// RemoveSet deletes a row; remaining rows are renumbered from 1.
type RemoveSet struct {
	Card, Row int
}

// SetNotes replaces a card's notes.
type SetNotes struct {
	Card  int
	Notes string
}

// RenameExercise replaces a card's exercise name.
type RenameExercise struct {
	Card int
	Name string
}

// AddExercise appends a card with two empty rows.
type AddExercise struct {
	Name string
}

func (e SetWeight) apply(s *State) error {
	row, err := s.row(e.Card, e.Row)
	if err != nil {
		return err
	}
	row.Weight = e.Value
	return nil
}

func (e SetReps) apply(s *State) error {
	row, err := s.row(e.Card, e.Row)
	if err != nil {
		return err
	}
	row.Reps = e.Value
	return nil
}

func (e SetRole) apply(s *State) error {
	if !model.ValidSetRoles[e.Role] {
		return fmt.Errorf("unknown set type %q", e.Role)
	}
	row, err := s.row(e.Card, e.Row)
	if err != nil {
		return err
	}
	row.Role = e.Role
	return nil
}

func (e AddSet) apply(s *State) error {
	card, err := s.card(e.Card)
	if err != nil {
		return err
	}
	card.Rows = append(card.Rows, Row{Ordinal: len(card.Rows) + 1})
	return nil
}

func (e RemoveSet) apply(s *State) error {
	card, err := s.card(e.Card)
	if err != nil {
		return err
	}
	if e.Row < 0 || e.Row >= len(card.Rows) {
		return fmt.Errorf("%w: %d", ErrNoSuchSet, e.Row+1)
	}
	card.Rows = append(card.Rows[:e.Row], card.Rows[e.Row+1:]...)
	renumber(card.Rows)
	return nil
}

func (e SetNotes) apply(s *State) error {
	card, err := s.card(e.Card)
	if err != nil {
		return err
	}
	card.Notes = e.Notes
	return nil
}

func (e RenameExercise) apply(s *State) error {
	card, err := s.card(e.Card)
	if err != nil {
		return err
	}
	card.Name = e.Name
	return nil
}

func (e AddExercise) apply(s *State) error {
	s.Cards = append(s.Cards, Card{Name: e.Name, Rows: emptyRows(2)})
	return nil
}

func (s *State) card(i int) (*Card, error) {
	if i < 0 || i >= len(s.Cards) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchCard, i+1)
	}
	return &s.Cards[i], nil
}

func (s *State) row(cardIdx, rowIdx int) (*Row, error) {
	card, err := s.card(cardIdx)
	if err != nil {
		return nil, err
	}
	if rowIdx < 0 || rowIdx >= len(card.Rows) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchSet, rowIdx+1)
	}
	return &card.Rows[rowIdx], nil
}
