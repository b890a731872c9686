// Package report aggregates timers into day-scoped work summaries.
package report

import (
	"time"

	"github.com/jenjinstudios/jt/internal/timer"
)

// WorkdayLength is the fixed nominal workday used for the remaining-time
// calculation in the Today scope.
const WorkdayLength = 8 * time.Hour

// Scope selects which timers a summary covers.
type Scope int

const (
	// All covers every timer, active ones included.
	All Scope = iota
	// Today covers timers whose start falls on today's calendar date,
	// regardless of finish state.
	Today
	// Yesterday covers timers whose end falls on yesterday's calendar
	// date. Only finished timers can qualify; an active timer spanning
	// midnight is never counted.
	Yesterday
)

// EmptyError signals that a scope has nothing to show. It is informational,
// not a failure: callers print the message and exit zero.
type EmptyError struct {
	Scope Scope
}

func (e *EmptyError) Error() string {
	switch e.Scope {
	case Today:
		return "You haven't worked on anything yet"
	case Yesterday:
		return "You didn't work on anything yesterday"
	default:
		return "No timers found"
	}
}

// Row is one summarized timer. Duration for an in-progress row is measured
// up to the summary's reference time.
type Row struct {
	Task       string
	Duration   time.Duration
	InProgress bool
}

// Report is an ordered day-scoped summary. Remaining is only meaningful for
// the Today scope (ShowRemaining); it may be negative when the subtotal has
// passed the nominal workday, which renders as overtime rather than being
// clamped.
type Report struct {
	Scope         Scope
	Rows          []Row
	Subtotal      time.Duration
	Remaining     time.Duration
	ShowRemaining bool
}

// Summarize builds the report for a scope over the given timers, in store
// order, with now as the reference clock. An empty filtered set yields an
// *EmptyError specific to the scope.
func Summarize(timers []timer.Timer, scope Scope, now time.Time) (*Report, error) {
	var selected []timer.Timer
	for _, t := range timers {
		if inScope(t, scope, now) {
			selected = append(selected, t)
		}
	}
	if len(selected) == 0 {
		return nil, &EmptyError{Scope: scope}
	}

	r := &Report{Scope: scope}
	for _, t := range selected {
		d := t.Duration(now)
		r.Rows = append(r.Rows, Row{
			Task:       t.Task,
			Duration:   d,
			InProgress: t.Active(),
		})
		r.Subtotal += d
	}
	if scope == Today {
		r.Remaining = WorkdayLength - r.Subtotal
		r.ShowRemaining = true
	}
	return r, nil
}

func inScope(t timer.Timer, scope Scope, now time.Time) bool {
	switch scope {
	case Today:
		return sameDay(t.Start, now)
	case Yesterday:
		return t.End != nil && sameDay(*t.End, now.AddDate(0, 0, -1))
	default:
		return true
	}
}

// sameDay compares local calendar dates, not rolling 24h windows.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
