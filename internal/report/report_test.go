package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenjinstudios/jt/internal/timer"
)

var now = time.Date(2024, 3, 12, 15, 0, 0, 0, time.Local)

func finished(task string, start, end time.Time) timer.Timer {
	return timer.Timer{ID: task + "-id", Task: task, Start: start, End: &end}
}

func active(task string, start time.Time) timer.Timer {
	return timer.Timer{ID: task + "-id", Task: task, Start: start}
}

func TestSummarizeToday(t *testing.T) {
	timers := []timer.Timer{
		finished("A", now.Add(-6*time.Hour), now.Add(-4*time.Hour)),     // today, 2h
		active("B", now.Add(-30*time.Minute)),                           // today, running
		finished("old", now.AddDate(0, 0, -3), now.AddDate(0, 0, -3)),   // not today
	}

	r, err := Summarize(timers, Today, now)
	require.NoError(t, err)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "A", r.Rows[0].Task)
	assert.False(t, r.Rows[0].InProgress)
	assert.Equal(t, 2*time.Hour, r.Rows[0].Duration)

	assert.Equal(t, "B", r.Rows[1].Task)
	assert.True(t, r.Rows[1].InProgress)
	assert.Equal(t, 30*time.Minute, r.Rows[1].Duration)

	assert.Equal(t, 2*time.Hour+30*time.Minute, r.Subtotal)
	assert.True(t, r.ShowRemaining)
	assert.Equal(t, 5*time.Hour+30*time.Minute, r.Remaining)
}

func TestSubtotalEqualsSumOfRows(t *testing.T) {
	timers := []timer.Timer{
		finished("A", now.Add(-3*time.Hour), now.Add(-2*time.Hour)),
		active("B", now.Add(-90*time.Minute)),
		finished("C", now.Add(-time.Hour), now.Add(-15*time.Minute)),
	}
	r, err := Summarize(timers, All, now)
	require.NoError(t, err)

	var sum time.Duration
	for _, row := range r.Rows {
		sum += row.Duration
	}
	assert.Equal(t, sum, r.Subtotal)
}

func TestRemainingGoesNegative(t *testing.T) {
	timers := []timer.Timer{
		finished("A", now.Add(-10*time.Hour), now.Add(-30*time.Minute)),
	}
	r, err := Summarize(timers, Today, now)
	require.NoError(t, err)
	assert.Equal(t, -90*time.Minute, r.Remaining, "overtime must not be clamped to zero")
}

func TestSummarizeYesterdayOnlyFinished(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	timers := []timer.Timer{
		finished("A", yesterday.Add(-2*time.Hour), yesterday),   // ended yesterday
		active("B", yesterday.Add(-time.Hour)),                  // active since yesterday: excluded
		finished("C", now.Add(-2*time.Hour), now.Add(-time.Hour)), // ended today: excluded
	}
	r, err := Summarize(timers, Yesterday, now)
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "A", r.Rows[0].Task)
	assert.False(t, r.ShowRemaining)
}

func TestSummarizeAllIncludesActive(t *testing.T) {
	timers := []timer.Timer{
		finished("A", now.AddDate(0, 0, -5), now.AddDate(0, 0, -5).Add(time.Hour)),
		active("B", now.Add(-time.Hour)),
	}
	r, err := Summarize(timers, All, now)
	require.NoError(t, err)
	require.Len(t, r.Rows, 2)
	assert.True(t, r.Rows[1].InProgress)
	assert.Equal(t, 2*time.Hour, r.Subtotal)
}

func TestMidnightSpanGap(t *testing.T) {
	// Starts 23:59:59 yesterday, ends 00:00:01 today: by construction it
	// belongs to neither Today (start-based) nor Yesterday (end-based).
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	spanning := finished("span", midnight.Add(-time.Second), midnight.Add(time.Second))

	_, err := Summarize([]timer.Timer{spanning}, Today, now)
	var empty *EmptyError
	require.ErrorAs(t, err, &empty)

	_, err = Summarize([]timer.Timer{spanning}, Yesterday, now)
	require.ErrorAs(t, err, &empty)

	// It still shows up in All.
	r, err := Summarize([]timer.Timer{spanning}, All, now)
	require.NoError(t, err)
	assert.Len(t, r.Rows, 1)
}

func TestEmptyScopeMessages(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{All, "No timers found"},
		{Today, "You haven't worked on anything yet"},
		{Yesterday, "You didn't work on anything yesterday"},
	}
	for _, tt := range tests {
		_, err := Summarize(nil, tt.scope, now)
		var empty *EmptyError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, tt.want, empty.Error())
		assert.Equal(t, tt.scope, empty.Scope)
	}
}

func TestFinishedTodayScenario(t *testing.T) {
	// start "A" → one active entry; finish → summarize(Today) shows one
	// finished row.
	s := timer.NewStore(nil)
	s.Now = func() time.Time { return now }

	started := s.Start("A", 0)
	require.Len(t, s.Active(), 1)
	require.Equal(t, "A", s.Active()[0].Task)

	s.Now = func() time.Time { return now.Add(time.Hour) }
	_, err := s.Finish(started.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Active())

	r, err := Summarize(s.All(), Today, now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "A", r.Rows[0].Task)
	assert.False(t, r.Rows[0].InProgress)
	assert.Equal(t, time.Hour, r.Rows[0].Duration)
}
