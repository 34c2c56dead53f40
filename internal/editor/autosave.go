package editor

import (
	"sort"
	"time"

	"github.com/verte-zerg/olympus/internal/model"
)

// DefaultAutosaveDelay collapses bursts of edits into one save.
const DefaultAutosaveDelay = 800 * time.Millisecond

// Ticket identifies one scheduled autosave.
type Ticket struct {
	Day model.DayKey
	Seq uint64
}

// Scheduler debounces autosaves per day. Each Schedule supersedes the
// previous ticket for the same day; only the latest ticket fires.
// Scheduler does not own a clock: the caller delivers the ticket back after
// Delay, for example through a timer message.
type Scheduler struct {
	delay   time.Duration
	seq     uint64
	pending map[model.DayKey]uint64
}

// NewScheduler returns a Scheduler. A non-positive delay uses the default.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Scheduler{delay: delay, pending: map[model.DayKey]uint64{}}
}

// Delay is how long the caller should wait before firing a ticket.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Schedule registers a pending save for day and returns its ticket.
func (s *Scheduler) Schedule(day model.DayKey) Ticket {
	s.seq++
	s.pending[day] = s.seq
	return Ticket{Day: day, Seq: s.seq}
}

// Fire consumes t. It reports true only when t is still the latest ticket
// for its day.
func (s *Scheduler) Fire(t Ticket) bool {
	seq, ok := s.pending[t.Day]
	if !ok || seq != t.Seq {
		return false
	}
	delete(s.pending, t.Day)
	return true
}

// Cancel drops the pending save for day, if any.
func (s *Scheduler) Cancel(day model.DayKey) {
	delete(s.pending, day)
}

// Pending reports whether day has a save waiting.
func (s *Scheduler) Pending(day model.DayKey) bool {
	_, ok := s.pending[day]
	return ok
}

// PendingDays lists days with a save waiting, sorted.
func (s *Scheduler) PendingDays() []model.DayKey {
	days := make([]model.DayKey, 0, len(s.pending))
	for day := range s.pending {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
