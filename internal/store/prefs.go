package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/olympus/internal/model"
)

// UnitKey holds the preferred unit.
const UnitKey = "om_unit"

// LoadUnit returns the stored unit preference, or fallback when none is
// stored or the stored value is unreadable.
func (s *Store) LoadUnit(ctx context.Context, fallback model.Unit) model.Unit {
	raw, ok, err := s.Get(ctx, UnitKey)
	if err != nil {
		logrus.WithError(err).Warn("failed to read unit preference")
		return fallback
	}
	if !ok {
		return fallback
	}
	unit, err := model.ParseUnit(raw)
	if err != nil {
		logrus.WithField("value", raw).Warn("ignoring invalid unit preference")
		return fallback
	}
	return unit
}

// SaveUnit persists the unit preference.
func (s *Store) SaveUnit(ctx context.Context, unit model.Unit) error {
	return s.Put(ctx, UnitKey, string(unit))
}
