package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler bridges the wizard controller's After calls onto the Bubble Tea
// loop. After records a tea.Tick command; the model returns it from Update via
// Drain, and when the resulting TimerFiredMsg arrives the model calls Fire,
// which runs the callback on the update goroutine.
type Scheduler struct {
	nextID  int
	pending map[int]func()
	queued  []tea.Cmd
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[int]func())}
}

// After satisfies wizard.Scheduler.
func (s *Scheduler) After(d time.Duration, fn func()) {
	id := s.nextID
	s.nextID++
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerFiredMsg{ID: id}
	}))
}

// Drain returns the commands queued since the last call, or nil.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs and forgets the callback with the given ID. It reports whether a
// callback was found.
func (s *Scheduler) Fire(id int) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Pending returns the number of callbacks not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
