// Package timer implements the workout stopwatch and the rest countdown on
// top of the bubbles stopwatch and timer components. Both advance on Bubble
// Tea messages, so the owning model forwards every message to Update.
package timer

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	bubbletimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the tick resolution of both clocks.
const DefaultInterval = time.Second

// DefaultRestExtend is how much Extend adds when no increment is configured.
const DefaultRestExtend = 15 * time.Second

// DefaultRestPresets are the rest lengths offered for quick selection.
var DefaultRestPresets = []time.Duration{60 * time.Second, 90 * time.Second, 120 * time.Second, 180 * time.Second}

// Notifier is alerted when a rest period runs out.
type Notifier interface {
	Notify()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func()

// Notify implements Notifier.
func (f NotifierFunc) Notify() { f() }

// BellNotifier rings the terminal bell. Write errors are ignored.
type BellNotifier struct {
	W io.Writer
}

// Notify implements Notifier.
func (b BellNotifier) Notify() {
	if b.W == nil {
		return
	}
	_, _ = io.WriteString(b.W, "\a")
}

// Stopwatch counts elapsed workout time.
type Stopwatch struct {
	sw stopwatch.Model
}

// NewStopwatch returns a paused stopwatch advancing by interval per tick.
func NewStopwatch(interval time.Duration) *Stopwatch {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Stopwatch{sw: stopwatch.NewWithInterval(interval)}
}

func (s *Stopwatch) ID() int                { return s.sw.ID() }
func (s *Stopwatch) Running() bool          { return s.sw.Running() }
func (s *Stopwatch) Elapsed() time.Duration { return s.sw.Elapsed() }

// Toggle flips between running and paused.
func (s *Stopwatch) Toggle() tea.Cmd {
	return s.sw.Toggle()
}

// Reset stops the stopwatch and clears elapsed time.
func (s *Stopwatch) Reset() tea.Cmd {
	return tea.Batch(s.sw.Stop(), s.sw.Reset())
}

// Update applies stopwatch messages and ignores everything else.
func (s *Stopwatch) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.sw, cmd = s.sw.Update(msg)
	return cmd
}

// Countdown is the rest timer. Each run gets a fresh bubbles timer, so ticks
// still in flight from a paused or replaced run are dropped by ID.
type Countdown struct {
	preset   time.Duration
	interval time.Duration
	t        bubbletimer.Model
	notifier Notifier
}

// NewCountdown returns a stopped countdown loaded with preset.
func NewCountdown(preset, interval time.Duration, n Notifier) *Countdown {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Countdown{preset: preset, interval: interval, notifier: n}
	c.load(preset)
	return c
}

// load replaces the timer with a stopped one holding d.
func (c *Countdown) load(d time.Duration) {
	c.t = bubbletimer.NewWithInterval(d, c.interval)
	c.t, _ = c.t.Update(bubbletimer.StartStopMsg{ID: c.t.ID()})
}

// run replaces the timer with a running one holding d.
func (c *Countdown) run(d time.Duration) tea.Cmd {
	c.t = bubbletimer.NewWithInterval(d, c.interval)
	return c.t.Init()
}

func (c *Countdown) ID() int               { return c.t.ID() }
func (c *Countdown) Preset() time.Duration { return c.preset }
func (c *Countdown) Running() bool         { return c.t.Running() }

// Remaining never reports less than zero.
func (c *Countdown) Remaining() time.Duration {
	return max(c.t.Timeout, 0)
}

// Start resumes the countdown, reloading the preset if it already ran out.
func (c *Countdown) Start() tea.Cmd {
	if c.Running() {
		return nil
	}
	remaining := c.Remaining()
	if remaining <= 0 {
		remaining = c.preset
	}
	if remaining <= 0 {
		return nil
	}
	return c.run(remaining)
}

// Pause stops the countdown without changing the remaining time.
func (c *Countdown) Pause() {
	if c.Running() {
		c.load(c.Remaining())
	}
}

// Reset stops the countdown and reloads the preset.
func (c *Countdown) Reset() {
	c.load(c.preset)
}

// Extend adds d to the remaining time. A finished countdown stays stopped.
func (c *Countdown) Extend(d time.Duration) {
	if d <= 0 {
		return
	}
	if c.Running() {
		c.t.Timeout += d
		return
	}
	c.load(c.Remaining() + d)
}

// Jump switches to a new preset and starts from it.
func (c *Countdown) Jump(preset time.Duration) tea.Cmd {
	if preset <= 0 {
		return nil
	}
	c.preset = preset
	return c.run(preset)
}

// Update applies timer messages. It reports true for the message that ends
// the current run, after notifying.
func (c *Countdown) Update(msg tea.Msg) (bool, tea.Cmd) {
	if done, ok := msg.(bubbletimer.TimeoutMsg); ok {
		if done.ID != c.t.ID() {
			return false, nil
		}
		if c.notifier != nil {
			c.notifier.Notify()
		}
		return true, nil
	}
	var cmd tea.Cmd
	c.t, cmd = c.t.Update(msg)
	return false, cmd
}

// FormatClock renders d as mm:ss, or h:mm:ss from one hour up.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
