package daylog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/olympus/internal/model"
)

// StorageKey is the key holding the serialized record array.
const StorageKey = "om_day_logs"

// Backend is the key-value persistence the log is written to. Update must
// apply fn atomically: no partial value may be visible to a later Get.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Update(ctx context.Context, key string, fn func(current string, ok bool) (string, error)) error
}

// Store is an append-only log of day records kept under one key.
type Store struct {
	backend Backend
	now     func() time.Time
	newID   func() string
}

// NewStore wires a Store over backend.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Records loads the whole history. Any read or decode failure yields an
// empty history so logging a new workout is never blocked.
func (s *Store) Records(ctx context.Context) History {
	raw, ok, err := s.backend.Get(ctx, StorageKey)
	if err != nil {
		logrus.WithError(err).Warn("failed to read day logs; treating history as empty")
		return History{}
	}
	if !ok {
		return History{}
	}
	return decode(raw)
}

// Append stores rec after the existing records. A missing ID or date is
// filled in. The returned record is the one that was persisted.
func (s *Store) Append(ctx context.Context, rec model.DayLogRecord) (model.DayLogRecord, error) {
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}
	if rec.Exercises == nil {
		rec.Exercises = []model.ExerciseEntry{}
	}
	err := s.backend.Update(ctx, StorageKey, func(current string, ok bool) (string, error) {
		history := History{}
		if ok {
			history = decode(current)
		}
		history = append(history, rec)
		data, err := json.Marshal(history)
		if err != nil {
			return "", fmt.Errorf("failed to encode day logs: %w", err)
		}
		return string(data), nil
	})
	if err != nil {
		return model.DayLogRecord{}, fmt.Errorf("failed to append day log: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"day":       rec.Day,
		"exercises": len(rec.Exercises),
	}).Debug("day log appended")
	return rec, nil
}

// LastRecordForDay returns the most recent record for day.
func (s *Store) LastRecordForDay(ctx context.Context, day model.DayKey) (model.DayLogRecord, bool) {
	return s.Records(ctx).LastForDay(day)
}

// LastExercise returns the most recent logged sets for name within day.
func (s *Store) LastExercise(ctx context.Context, day model.DayKey, name string) (model.ExerciseEntry, bool) {
	return s.Records(ctx).LastExercise(day, name)
}

func decode(raw string) History {
	var history History
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		logrus.WithError(err).Warn("day logs are corrupt; treating history as empty")
		return History{}
	}
	if history == nil {
		return History{}
	}
	return history
}
