package career

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrRateLimited is returned when a request would exceed the configured limits.
var ErrRateLimited = errors.New("rate limit exceeded, please try again later")

// RateLimiter enforces a rolling per-minute window and a per-day cap.
type RateLimiter struct {
	mu        sync.Mutex
	perMinute int
	perDay    int
	now       func() time.Time

	recent    []time.Time
	daily     int
	lastReset time.Time
}

// NewRateLimiter creates a limiter. A non-positive limit disables that window.
func NewRateLimiter(perMinute, perDay int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		perDay:    perDay,
		now:       time.Now,
		lastReset: time.Now(),
	}
}

// SetClock replaces the time source. Intended for tests.
func (l *RateLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	l.lastReset = now()
}

// Seed restores the daily counter from a previous run.
func (l *RateLimiter) Seed(daily int, lastReset time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.daily = daily
	if !lastReset.IsZero() {
		l.lastReset = lastReset
	}
}

// Daily returns the daily counter and the time it was last reset.
func (l *RateLimiter) Daily() (int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.daily, l.lastReset
}

// Allow records a request and reports whether it was within limits.
func (l *RateLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if dateOf(now).After(dateOf(l.lastReset)) {
		l.daily = 0
		l.lastReset = now
	}

	cutoff := now.Add(-time.Minute)
	kept := l.recent[:0]
	for _, t := range l.recent {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.recent = kept

	if l.perMinute > 0 && len(l.recent) >= l.perMinute {
		return false
	}
	if l.perDay > 0 && l.daily >= l.perDay {
		return false
	}

	l.recent = append(l.recent, now)
	l.daily++
	return true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Limited wraps a Source so each call consumes one limiter slot.
type Limited struct {
	Source  Source
	Limiter *RateLimiter
}

// Recommend satisfies Source.
func (l Limited) Recommend(ctx context.Context, p Profile) ([]Profession, error) {
	if !l.Limiter.Allow() {
		return nil, ErrRateLimited
	}
	recs, err := l.Source.Recommend(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("analysing profile: %w", err)
	}
	return recs, nil
}
