// Package timer implements the task-timer records and their lifecycle:
// started with an optional backfill, finished exactly once, never deleted.
package timer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no timer (or no active timer, for Finish)
// has the requested id.
var ErrNotFound = errors.New("timer not found")

// Timer is a single tracked stretch of work on a task. End is nil while the
// timer is running; once set, the record is final.
type Timer struct {
	ID    string     `json:"id"`
	Task  string     `json:"task"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Active reports whether the timer is still running.
func (t Timer) Active() bool {
	return t.End == nil
}

// Duration returns the tracked time, measuring active timers up to now.
func (t Timer) Duration(now time.Time) time.Duration {
	if t.End != nil {
		return t.End.Sub(t.Start)
	}
	return now.Sub(t.Start)
}

// Store owns the timer list for a single invocation. Now is the clock used
// for new starts and finishes; tests may replace it.
type Store struct {
	timers []Timer
	Now    func() time.Time
}

// NewStore builds a store around a loaded timer list.
func NewStore(timers []Timer) *Store {
	return &Store{timers: timers, Now: time.Now}
}

// All returns every timer in insertion order.
func (s *Store) All() []Timer {
	return s.timers
}

// Start creates a timer for the named task beginning backfill ago and
// appends it. It cannot fail; backfill has already passed validation.
func (s *Store) Start(taskName string, backfill time.Duration) Timer {
	t := Timer{
		ID:    uuid.New().String(),
		Task:  taskName,
		Start: s.Now().Add(-backfill),
	}
	s.timers = append(s.timers, t)
	return t
}

// Active returns the running timers, oldest first.
func (s *Store) Active() []Timer {
	var active []Timer
	for _, t := range s.timers {
		if t.Active() {
			active = append(active, t)
		}
	}
	return active
}

// Finish stops the active timer with the given id and returns the finished
// record. Only active timers are searched, so finishing an already-finished
// or unknown id reports ErrNotFound rather than touching the record again.
func (s *Store) Finish(id string) (Timer, error) {
	for i := range s.timers {
		if s.timers[i].ID == id && s.timers[i].Active() {
			end := s.Now()
			s.timers[i].End = &end
			return s.timers[i], nil
		}
	}
	return Timer{}, ErrNotFound
}

// Find returns the timer with the given id regardless of state.
func (s *Store) Find(id string) (Timer, error) {
	for _, t := range s.timers {
		if t.ID == id {
			return t, nil
		}
	}
	return Timer{}, ErrNotFound
}
