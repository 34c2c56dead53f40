package editor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/store"
)

func openTestLog(t *testing.T) (*daylog.Store, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "olympus.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return daylog.NewStore(st), st
}

func TestGatherKeepsOnlyCompleteSets(t *testing.T) {
	s := State{Day: model.DayLegs, Unit: model.UnitMetric, Cards: []Card{{
		Name: "Squat",
		Rows: []Row{
			{Ordinal: 1, Role: model.RoleWorking, Weight: "100", Reps: "5"},
			{Ordinal: 2, Weight: "100"},
		},
	}}}

	got := Gather(s)
	require.Len(t, got, 1)
	assert.Equal(t, "Squat", got[0].Name)
	require.Len(t, got[0].Sets, 1)
	assert.Equal(t, model.SetEntry{Ordinal: 1, Role: model.RoleWorking, Weight: 100, Reps: 5}, got[0].Sets[0])
}

func TestGatherDropsOnlyFullyEmptyCards(t *testing.T) {
	s := State{Cards: []Card{
		{Name: "", Notes: "", Rows: []Row{{Ordinal: 1, Weight: "abc", Reps: "-3"}}},
		{Name: "Dips", Rows: emptyRows(2)},
		{Name: "  ", Notes: "felt strong"},
		{Name: "", Rows: []Row{{Ordinal: 1, Weight: "20", Reps: "12"}}},
	}}

	got := Gather(s)
	require.Len(t, got, 3)
	assert.Equal(t, "Dips", got[0].Name)
	assert.Empty(t, got[0].Sets)
	assert.Equal(t, "felt strong", got[1].Notes)
	assert.Equal(t, 12, got[2].Sets[0].Reps)
}

func TestGatherNumbersKeptSetsDensely(t *testing.T) {
	s := State{Cards: []Card{{
		Name: "Squat",
		Rows: []Row{
			{Ordinal: 1, Weight: "60"},
			{Ordinal: 2, Role: model.RoleWorking, Weight: "100", Reps: "5"},
			{Ordinal: 3},
			{Ordinal: 4, Role: model.RoleBackoff, Weight: "90", Reps: "8"},
		},
	}}}

	got := Gather(s)
	require.Len(t, got, 1)
	require.Len(t, got[0].Sets, 2)
	assert.Equal(t, model.SetEntry{Ordinal: 1, Role: model.RoleWorking, Weight: 100, Reps: 5}, got[0].Sets[0])
	assert.Equal(t, model.SetEntry{Ordinal: 2, Role: model.RoleBackoff, Weight: 90, Reps: 8}, got[0].Sets[1])
}

func TestParseRow(t *testing.T) {
	set := ParseRow(Row{Ordinal: 3, Weight: " 62.5 ", Reps: "8"})
	assert.Equal(t, 62.5, set.Weight)
	assert.Equal(t, 8, set.Reps)
	assert.True(t, set.Complete())

	for _, w := range []string{"", "0", "-5", "NaN", "inf", "ten"} {
		assert.False(t, ParseRow(Row{Weight: w, Reps: "5"}).Complete(), "weight %q", w)
	}
	assert.False(t, ParseRow(Row{Weight: "50", Reps: "2.5"}).Complete())
}

func TestApplyEditsAreImmutable(t *testing.T) {
	s := State{Cards: []Card{{Name: "Squat", Rows: emptyRows(2)}}}

	next, err := Apply(s, SetWeight{Card: 0, Row: 1, Value: "120"})
	require.NoError(t, err)
	assert.Equal(t, "120", next.Cards[0].Rows[1].Weight)
	assert.Empty(t, s.Cards[0].Rows[1].Weight)

	_, err = Apply(s, SetReps{Card: 1, Row: 0, Value: "5"})
	require.ErrorIs(t, err, ErrNoSuchCard)
	_, err = Apply(s, SetReps{Card: 0, Row: 4, Value: "5"})
	require.ErrorIs(t, err, ErrNoSuchSet)
	_, err = Apply(s, SetRole{Card: 0, Row: 0, Role: "heavy"})
	require.Error(t, err)
}

func TestRemoveSetRenumbers(t *testing.T) {
	s := State{Cards: []Card{{Name: "Row", Rows: []Row{
		{Ordinal: 1, Weight: "60"},
		{Ordinal: 2, Weight: "70"},
		{Ordinal: 3, Weight: "80"},
		{Ordinal: 4, Weight: "90"},
	}}}}

	next, err := Apply(s, RemoveSet{Card: 0, Row: 1})
	require.NoError(t, err)
	rows := next.Cards[0].Rows
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Ordinal)
	}
	assert.Equal(t, []string{"60", "80", "90"}, []string{rows[0].Weight, rows[1].Weight, rows[2].Weight})

	next, err = Apply(next, AddSet{Card: 0})
	require.NoError(t, err)
	assert.Equal(t, 4, next.Cards[0].Rows[3].Ordinal)
}

func TestCardEdits(t *testing.T) {
	s := State{}
	s, err := Apply(s, AddExercise{Name: "Shrugs"})
	require.NoError(t, err)
	require.Len(t, s.Cards, 1)
	assert.Len(t, s.Cards[0].Rows, 2)

	s, err = Apply(s, RenameExercise{Card: 0, Name: "Heavy Shrugs"})
	require.NoError(t, err)
	s, err = Apply(s, SetNotes{Card: 0, Notes: "straps"})
	require.NoError(t, err)
	s, err = Apply(s, SetRole{Card: 0, Row: 0, Role: model.RoleTopSet})
	require.NoError(t, err)
	assert.Equal(t, "Heavy Shrugs", s.Cards[0].Name)
	assert.Equal(t, "straps", s.Cards[0].Notes)
	assert.Equal(t, model.RoleTopSet, s.Cards[0].Rows[0].Role)
}

func TestReconstructWithoutHistoryUsesDefaults(t *testing.T) {
	s, err := Reconstruct(nil, model.DayPush, model.UnitMetric)
	require.NoError(t, err)

	names, err := daylog.Defaults(model.DayPush)
	require.NoError(t, err)
	require.Len(t, s.Cards, len(names))
	for i, card := range s.Cards {
		assert.Equal(t, names[i], card.Name)
		require.Len(t, card.Rows, 2)
		assert.Equal(t, Row{Ordinal: 1}, card.Rows[0])
		assert.Equal(t, Row{Ordinal: 2}, card.Rows[1])
	}

	_, err = Reconstruct(nil, "arms", model.UnitMetric)
	require.ErrorIs(t, err, daylog.ErrUnknownDay)
}

func TestReconstructPrefillsFromLastRecord(t *testing.T) {
	history := daylog.History{
		{Day: model.DayLegs, Exercises: []model.ExerciseEntry{
			{Name: "Squat", Sets: []model.SetEntry{{Ordinal: 1, Weight: 95, Reps: 5}}},
		}},
		{Day: model.DayLegs, Exercises: []model.ExerciseEntry{
			{Name: "Squat", Notes: "belt", Sets: []model.SetEntry{
				{Ordinal: 1, Role: model.RoleTopSet, Weight: 100, Reps: 5},
				{Ordinal: 2, Role: model.RoleBackoff, Weight: 90, Reps: 8},
			}},
			{Name: "Leg Press (Optional)", Sets: []model.SetEntry{{Ordinal: 1, Weight: 50, Reps: 10}}},
			{Name: "Calf Raises", Notes: "skipped"},
		}},
	}

	s, err := Reconstruct(history, model.DayLegs, model.UnitMetric)
	require.NoError(t, err)
	require.Len(t, s.Cards, 3)

	squat := s.Cards[0]
	assert.Equal(t, "belt", squat.Notes)
	require.Len(t, squat.Rows, 2)
	assert.Equal(t, Row{Ordinal: 1, Role: model.RoleTopSet, Weight: "100", Reps: "5"}, squat.Rows[0])
	assert.Equal(t, Row{Ordinal: 2, Role: model.RoleBackoff, Weight: "90", Reps: "8"}, squat.Rows[1])

	press := s.Cards[1]
	require.Len(t, press.Rows, 1)
	assert.Equal(t, "50", press.Rows[0].Weight)
	assert.Empty(t, press.Rows[0].Reps)

	calves := s.Cards[2]
	assert.Equal(t, emptyRows(2), calves.Rows)
}

func TestReconstructUsesOlderSetsForExerciseLoggedEmpty(t *testing.T) {
	history := daylog.History{
		{Day: model.DayPull, Exercises: []model.ExerciseEntry{
			{Name: "Barbell Curl", Sets: []model.SetEntry{{Ordinal: 1, Weight: 40, Reps: 8}}},
		}},
		{Day: model.DayPull, Exercises: []model.ExerciseEntry{
			{Name: "Barbell Curl", Notes: "elbow sore"},
		}},
	}
	s, err := Reconstruct(history, model.DayPull, model.UnitMetric)
	require.NoError(t, err)
	require.Len(t, s.Cards, 1)
	assert.Equal(t, "elbow sore", s.Cards[0].Notes)
	assert.Equal(t, "40", s.Cards[0].Rows[0].Weight)
}

func TestEditorRoundTripThroughStore(t *testing.T) {
	logs, _ := openTestLog(t)
	ctx := context.Background()

	ed := New(logs, model.UnitMetric, 0)
	s, err := ed.Open(ctx, model.DayLegs)
	require.NoError(t, err)
	idx := -1
	for i, c := range s.Cards {
		if c.Name == "Leg Press (Optional)" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	_, err = ed.Apply(model.DayLegs, SetWeight{Card: idx, Row: 0, Value: "50"})
	require.NoError(t, err)
	_, err = ed.Apply(model.DayLegs, SetReps{Card: idx, Row: 0, Value: "10"})
	require.NoError(t, err)
	_, err = ed.Save(ctx, model.DayLegs)
	require.NoError(t, err)

	next := New(logs, model.UnitMetric, 0)
	s, err = next.Open(ctx, model.DayLegs)
	require.NoError(t, err)
	require.Greater(t, len(s.Cards), idx)
	press := s.Cards[idx]
	assert.Equal(t, "Leg Press (Optional)", press.Name)
	require.Len(t, press.Rows, 1)
	assert.Equal(t, "50", press.Rows[0].Weight)
	assert.Empty(t, press.Rows[0].Reps)
	assert.Len(t, s.Cards[0].Rows, 2, "exercises without sets start with two empty rows")
}

func TestAutosaveCollapsesBursts(t *testing.T) {
	logs, _ := openTestLog(t)
	ctx := context.Background()

	ed := New(logs, model.UnitMetric, 0)
	assert.Equal(t, 800*time.Millisecond, ed.AutosaveDelay())
	_, err := ed.Open(ctx, model.DayPush)
	require.NoError(t, err)

	var tickets []Ticket
	for _, w := range []string{"6", "60", "60."} {
		ticket, err := ed.Apply(model.DayPush, SetWeight{Card: 0, Row: 0, Value: w})
		require.NoError(t, err)
		tickets = append(tickets, ticket)
	}
	ticket, err := ed.Apply(model.DayPush, SetReps{Card: 0, Row: 0, Value: "6"})
	require.NoError(t, err)
	tickets = append(tickets, ticket)

	for _, tk := range tickets[:len(tickets)-1] {
		saved, err := ed.Flush(ctx, tk)
		require.NoError(t, err)
		assert.False(t, saved)
	}
	saved, err := ed.Flush(ctx, tickets[len(tickets)-1])
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = ed.Flush(ctx, tickets[len(tickets)-1])
	require.NoError(t, err)
	assert.False(t, saved, "a ticket fires once")

	history := logs.Records(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, 60.0, history[0].Exercises[0].Sets[0].Weight)
	assert.Equal(t, 6, history[0].Exercises[0].Sets[0].Reps)
}

func TestManualSaveCancelsPendingAutosave(t *testing.T) {
	logs, _ := openTestLog(t)
	ctx := context.Background()

	ed := New(logs, model.UnitImperial, 0)
	_, err := ed.Open(ctx, model.DayPull)
	require.NoError(t, err)
	ticket, err := ed.Apply(model.DayPull, SetNotes{Card: 0, Notes: "grip gave out"})
	require.NoError(t, err)

	rec, err := ed.Save(ctx, model.DayPull)
	require.NoError(t, err)
	assert.Equal(t, model.UnitImperial, rec.Unit)

	saved, err := ed.Flush(ctx, ticket)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Len(t, logs.Records(ctx), 1)
}

func TestSwitchingDaysKeepsPendingAutosave(t *testing.T) {
	logs, _ := openTestLog(t)
	ctx := context.Background()

	ed := New(logs, model.UnitMetric, 0)
	_, err := ed.Open(ctx, model.DayPush)
	require.NoError(t, err)
	pushTicket, err := ed.Apply(model.DayPush, SetWeight{Card: 0, Row: 0, Value: "80"})
	require.NoError(t, err)

	_, err = ed.Open(ctx, model.DayLegs)
	require.NoError(t, err)
	_, err = ed.Apply(model.DayLegs, SetWeight{Card: 0, Row: 0, Value: "120"})
	require.NoError(t, err)

	saved, err := ed.Flush(ctx, pushTicket)
	require.NoError(t, err)
	assert.True(t, saved)

	require.NoError(t, ed.FlushAll(ctx))
	history := logs.Records(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, model.DayPush, history[0].Day)
	assert.Equal(t, model.DayLegs, history[1].Day)
}

func TestSavingWithCorruptHistory(t *testing.T) {
	logs, kv := openTestLog(t)
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, daylog.StorageKey, "[{]"))

	ed := New(logs, model.UnitMetric, 0)
	s, err := ed.Open(ctx, model.DayLegs)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Cards)

	_, err = ed.Apply(model.DayLegs, SetWeight{Card: 0, Row: 0, Value: "100"})
	require.NoError(t, err)
	_, err = ed.Apply(model.DayLegs, SetReps{Card: 0, Row: 0, Value: "5"})
	require.NoError(t, err)
	_, err = ed.Save(ctx, model.DayLegs)
	require.NoError(t, err)
	assert.Len(t, logs.Records(ctx), 1)
}

func TestApplyRequiresOpenDay(t *testing.T) {
	logs, _ := openTestLog(t)
	ed := New(logs, model.UnitMetric, 0)
	_, err := ed.Apply(model.DayPull, AddSet{Card: 0})
	require.Error(t, err)
}

func TestScheduler(t *testing.T) {
	s := NewScheduler(2 * time.Second)
	assert.Equal(t, 2*time.Second, s.Delay())

	a := s.Schedule(model.DayPush)
	b := s.Schedule(model.DayLegs)
	assert.Equal(t, []model.DayKey{model.DayLegs, model.DayPush}, s.PendingDays())

	s.Cancel(model.DayPush)
	assert.False(t, s.Pending(model.DayPush))
	assert.False(t, s.Fire(a))
	assert.True(t, s.Fire(b))
	assert.Empty(t, s.PendingDays())
}
