package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
)

// Log is the persistence the editor reads history from and appends to.
type Log interface {
	Records(ctx context.Context) daylog.History
	Append(ctx context.Context, rec model.DayLogRecord) (model.DayLogRecord, error)
}

// Editor is the session context: one state per opened day, the unit in use
// and the autosave schedule.
type Editor struct {
	log    Log
	sched  *Scheduler
	unit   model.Unit
	states map[model.DayKey]State
}

// New creates an Editor. A non-positive autosave delay uses the default.
func New(log Log, unit model.Unit, autosave time.Duration) *Editor {
	return &Editor{
		log:    log,
		sched:  NewScheduler(autosave),
		unit:   unit,
		states: map[model.DayKey]State{},
	}
}

// Unit returns the unit used for new records.
func (e *Editor) Unit() model.Unit {
	return e.unit
}

// SetUnit changes the unit for every open day and for new records.
func (e *Editor) SetUnit(unit model.Unit) {
	e.unit = unit
	for day, st := range e.states {
		st.Unit = unit
		e.states[day] = st
	}
}

// AutosaveDelay is the debounce window.
func (e *Editor) AutosaveDelay() time.Duration {
	return e.sched.Delay()
}

// Open returns the state for day, reconstructing it from history the first
// time the day is opened in this session.
func (e *Editor) Open(ctx context.Context, day model.DayKey) (State, error) {
	if st, ok := e.states[day]; ok {
		return st, nil
	}
	st, err := Reconstruct(e.log.Records(ctx), day, e.unit)
	if err != nil {
		return State{}, err
	}
	e.states[day] = st
	return st, nil
}

// State returns the in-memory state for an opened day.
func (e *Editor) State(day model.DayKey) (State, bool) {
	st, ok := e.states[day]
	return st, ok
}

// Apply runs edit against day and schedules an autosave for it.
func (e *Editor) Apply(day model.DayKey, edit Edit) (Ticket, error) {
	st, ok := e.states[day]
	if !ok {
		return Ticket{}, fmt.Errorf("day %q is not open", day)
	}
	next, err := Apply(st, edit)
	if err != nil {
		return Ticket{}, err
	}
	e.states[day] = next
	return e.sched.Schedule(day), nil
}

// Flush performs the autosave for t when it is still the latest ticket for
// its day. It reports whether a record was appended.
func (e *Editor) Flush(ctx context.Context, t Ticket) (bool, error) {
	if !e.sched.Fire(t) {
		return false, nil
	}
	if _, err := e.persist(ctx, t.Day); err != nil {
		return false, err
	}
	return true, nil
}

// Save appends the current state of day immediately and cancels its
// pending autosave.
func (e *Editor) Save(ctx context.Context, day model.DayKey) (model.DayLogRecord, error) {
	e.sched.Cancel(day)
	return e.persist(ctx, day)
}

// FlushAll saves every day that still has an autosave pending.
func (e *Editor) FlushAll(ctx context.Context) error {
	var errs error
	for _, day := range e.sched.PendingDays() {
		if _, err := e.Save(ctx, day); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (e *Editor) persist(ctx context.Context, day model.DayKey) (model.DayLogRecord, error) {
	st, ok := e.states[day]
	if !ok {
		return model.DayLogRecord{}, fmt.Errorf("day %q is not open", day)
	}
	rec, err := e.log.Append(ctx, Record(st))
	if err != nil {
		logrus.WithError(err).WithField("day", day).Error("failed to save day log")
		return model.DayLogRecord{}, err
	}
	return rec, nil
}
