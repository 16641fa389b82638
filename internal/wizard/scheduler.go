package wizard

import "time"

// ManualScheduler queues callbacks until Flush is called. Use it in tests to
// run the simulated delay synchronously.
type ManualScheduler struct {
	queue  []func()
	Delays []time.Duration
}

// After satisfies Scheduler.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.Delays = append(s.Delays, d)
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int { return len(s.queue) }

// Flush runs queued callbacks in order, including any queued while flushing.
// It returns the number run.
func (s *ManualScheduler) Flush() int {
	n := 0
	for len(s.queue) > 0 {
		fn := s.queue[0]
		s.queue = s.queue[1:]
		fn()
		n++
	}
	return n
}

// ImmediateScheduler runs callbacks inline, ignoring the delay.
type ImmediateScheduler struct{}

// After satisfies Scheduler.
func (ImmediateScheduler) After(_ time.Duration, fn func()) { fn() }
