// Package tui provides the Bubble Tea workout log interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/olympus/internal/editor"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/timer"
)

type field int

const (
	fieldWeight field = iota
	fieldReps
	fieldRole
	fieldCount
)

type editKind int

const (
	editNone editKind = iota
	editWeight
	editReps
	editNotes
	editName
	editNewExercise
)

// autosaveMsg delivers a debounced save ticket back to the update loop.
type autosaveMsg struct {
	ticket editor.Ticket
}

// Options configures the log UI.
type Options struct {
	Day         model.DayKey
	RestPresets []time.Duration
	RestExtend  time.Duration
	Notifier    timer.Notifier
	// TimerInterval is the clock resolution; zero means one second.
	TimerInterval time.Duration
	// SaveUnit persists a unit switch. Optional.
	SaveUnit func(context.Context, model.Unit) error
}

// Model implements the Bubble Tea workout log UI.
type Model struct {
	ctx    context.Context
	editor *editor.Editor

	days   []model.DayKey
	dayIdx int

	// cursor indexes positions(): a card header or one of its rows.
	cursor int
	field  field

	editing editKind
	input   textinput.Model

	workout     *timer.Stopwatch
	rest        *timer.Countdown
	restPresets []time.Duration
	restExtend  time.Duration
	saveUnit    func(context.Context, model.Unit) error

	status   string
	errMsg   string
	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int
}

type position struct {
	card int
	row  int // -1 is the card header
}

// NewModel constructs the log UI and opens the starting day.
func NewModel(ctx context.Context, ed *editor.Editor, opts Options) (*Model, error) {
	presets := opts.RestPresets
	if len(presets) == 0 {
		presets = timer.DefaultRestPresets
	}
	extend := opts.RestExtend
	if extend <= 0 {
		extend = timer.DefaultRestExtend
	}
	input := textinput.New()
	input.CharLimit = 120

	m := &Model{
		ctx:         ctx,
		editor:      ed,
		days:        model.Days,
		input:       input,
		workout:     timer.NewStopwatch(opts.TimerInterval),
		rest:        timer.NewCountdown(presets[0], opts.TimerInterval, opts.Notifier),
		restPresets: presets,
		restExtend:  extend,
		saveUnit:    opts.SaveUnit,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	if opts.Day != "" {
		m.dayIdx = -1
		for i, d := range m.days {
			if d == opts.Day {
				m.dayIdx = i
			}
		}
		if m.dayIdx < 0 {
			return nil, fmt.Errorf("unknown day %q", opts.Day)
		}
	}
	if _, err := ed.Open(ctx, m.day()); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case autosaveMsg:
		saved, err := m.editor.Flush(m.ctx, msg.ticket)
		if err != nil {
			m.errMsg = fmt.Sprintf("autosave failed: %v", err)
			return m, nil
		}
		if saved {
			m.status = fmt.Sprintf("Autosaved %s", msg.ticket.Day)
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	default:
		return m, m.updateTimers(msg)
	}
}

// updateTimers forwards clock messages; each timer ignores the other's.
func (m *Model) updateTimers(msg tea.Msg) tea.Cmd {
	workoutCmd := m.workout.Update(msg)
	done, restCmd := m.rest.Update(msg)
	if done {
		m.status = "Rest over"
	}
	return tea.Batch(workoutCmd, restCmd)
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	case tea.KeyEnter:
		return m, m.commitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.editor.FlushAll(m.ctx); err != nil {
			logrus.WithError(err).Error("failed to save pending logs on exit")
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.NextDay):
		return m, m.switchDay(1)
	case key.Matches(msg, m.keys.PrevDay):
		return m, m.switchDay(-1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		m.field = (m.field + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.Right):
		m.field = (m.field + 1) % fieldCount
	case key.Matches(msg, m.keys.Edit):
		return m, m.beginEditAtCursor()
	case key.Matches(msg, m.keys.Role):
		return m, m.cycleRole()
	case key.Matches(msg, m.keys.AddSet):
		if pos, ok := m.position(); ok {
			return m, m.apply(editor.AddSet{Card: pos.card})
		}
	case key.Matches(msg, m.keys.RemoveSet):
		if pos, ok := m.position(); ok && pos.row >= 0 {
			cmd := m.apply(editor.RemoveSet{Card: pos.card, Row: pos.row})
			m.clampCursor()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Notes):
		if pos, ok := m.position(); ok {
			return m, m.beginEdit(editNotes, m.state().Cards[pos.card].Notes, "notes")
		}
	case key.Matches(msg, m.keys.AddEx):
		return m, m.beginEdit(editNewExercise, "", "exercise name")
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Unit):
		m.toggleUnit()
	case key.Matches(msg, m.keys.Workout):
		return m, m.workout.Toggle()
	case key.Matches(msg, m.keys.WorkoutRst):
		return m, m.workout.Reset()
	case key.Matches(msg, m.keys.Rest):
		if m.rest.Running() {
			m.rest.Pause()
			return m, nil
		}
		return m, m.rest.Start()
	case key.Matches(msg, m.keys.RestReset):
		m.rest.Reset()
	case key.Matches(msg, m.keys.RestExtend):
		m.rest.Extend(m.restExtend)
	case key.Matches(msg, m.keys.RestPreset):
		idx, err := strconv.Atoi(msg.String())
		if err == nil && idx >= 1 && idx <= len(m.restPresets) {
			return m, m.rest.Jump(m.restPresets[idx-1])
		}
	}
	return m, nil
}

func (m *Model) day() model.DayKey {
	return m.days[m.dayIdx]
}

func (m *Model) state() editor.State {
	st, _ := m.editor.State(m.day())
	return st
}

func (m *Model) positions() []position {
	var out []position
	for i, card := range m.state().Cards {
		out = append(out, position{card: i, row: -1})
		for r := range card.Rows {
			out = append(out, position{card: i, row: r})
		}
	}
	return out
}

func (m *Model) position() (position, bool) {
	ps := m.positions()
	if m.cursor < 0 || m.cursor >= len(ps) {
		return position{}, false
	}
	return ps[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.positions())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// switchDay leaves any pending autosave of the previous day in flight.
func (m *Model) switchDay(delta int) tea.Cmd {
	m.dayIdx = (m.dayIdx + delta + len(m.days)) % len(m.days)
	m.cursor = 0
	if _, err := m.editor.Open(m.ctx, m.day()); err != nil {
		m.errMsg = err.Error()
	}
	return nil
}

func (m *Model) apply(edit editor.Edit) tea.Cmd {
	ticket, err := m.editor.Apply(m.day(), edit)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.status = ""
	return autosave(ticket, m.editor.AutosaveDelay())
}

func (m *Model) save() {
	rec, err := m.editor.Save(m.ctx, m.day())
	if err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Saved %s workout (%d exercises)", rec.Day, len(rec.Exercises))
}

// toggleUnit relabels the open days; entered numbers are not converted.
func (m *Model) toggleUnit() {
	unit := model.UnitImperial
	if m.editor.Unit() == model.UnitImperial {
		unit = model.UnitMetric
	}
	m.editor.SetUnit(unit)
	m.status = "Unit: " + unit.Symbol()
	if m.saveUnit == nil {
		return
	}
	if err := m.saveUnit(m.ctx, unit); err != nil {
		m.errMsg = fmt.Sprintf("failed to save unit: %v", err)
	}
}

func (m *Model) cycleRole() tea.Cmd {
	pos, ok := m.position()
	if !ok || pos.row < 0 {
		return nil
	}
	current := m.state().Cards[pos.card].Rows[pos.row].Role
	return m.apply(editor.SetRole{Card: pos.card, Row: pos.row, Role: current.Next()})
}

func (m *Model) beginEditAtCursor() tea.Cmd {
	pos, ok := m.position()
	if !ok {
		return nil
	}
	card := m.state().Cards[pos.card]
	if pos.row < 0 {
		return m.beginEdit(editName, card.Name, "exercise name")
	}
	row := card.Rows[pos.row]
	switch m.field {
	case fieldWeight:
		return m.beginEdit(editWeight, row.Weight, "weight ("+m.editor.Unit().Symbol()+")")
	case fieldReps:
		return m.beginEdit(editReps, row.Reps, "reps")
	default:
		return m.cycleRole()
	}
}

func (m *Model) beginEdit(kind editKind, value, placeholder string) tea.Cmd {
	m.editing = kind
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = editNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) commitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	kind := m.editing
	m.stopEditing()

	if kind == editNewExercise {
		if value == "" {
			return nil
		}
		cmd := m.apply(editor.AddExercise{Name: value})
		m.cursor = len(m.positions()) - 3
		return cmd
	}

	pos, ok := m.position()
	if !ok {
		return nil
	}
	switch kind {
	case editWeight:
		m.warnIfInvalid(value, false)
		return m.apply(editor.SetWeight{Card: pos.card, Row: pos.row, Value: value})
	case editReps:
		m.warnIfInvalid(value, true)
		return m.apply(editor.SetReps{Card: pos.card, Row: pos.row, Value: value})
	case editNotes:
		return m.apply(editor.SetNotes{Card: pos.card, Notes: value})
	case editName:
		return m.apply(editor.RenameExercise{Card: pos.card, Name: value})
	}
	return nil
}

func (m *Model) warnIfInvalid(value string, integer bool) {
	if value == "" {
		return
	}
	row := editor.Row{Weight: "1", Reps: "1"}
	if integer {
		row.Reps = value
	} else {
		row.Weight = value
	}
	if !editor.ParseRow(row).Complete() {
		m.errMsg = fmt.Sprintf("%q is not a positive number; the set will not be saved", value)
	}
}

func autosave(ticket editor.Ticket, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return autosaveMsg{ticket: ticket}
	})
}
