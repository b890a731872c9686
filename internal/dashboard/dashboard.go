// Package dashboard renders a live full-screen view of active timers and
// today's progress toward the nominal workday.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jenjinstudios/jt/internal/format"
	"github.com/jenjinstudios/jt/internal/report"
	"github.com/jenjinstudios/jt/internal/timer"
)

const refreshInterval = 30 * time.Second

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	overtimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Reload returns the current timer list; the dashboard calls it on every
// refresh so finishes from other invocations show up.
type Reload func() ([]timer.Timer, error)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the dashboard bubbletea model.
type Model struct {
	timers []timer.Timer
	reload Reload
	width  int
	height int
}

// New builds the dashboard over an initial timer list.
func New(timers []timer.Timer, reload Reload) Model {
	return Model{timers: timers, reload: reload}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if timers, err := m.reload(); err == nil {
			m.timers = timers
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	now := time.Now()

	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("jt - %s", now.Format("Jan 2, 2006 15:04:05")),
	)

	colWidth := m.width/2 - 3
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.activeBox(colWidth, now),
		m.progressBox(colWidth, now),
	)
	right := m.todayBox(colWidth, now)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	footer := footerStyle.Width(m.width).
		Render("Press 'q' to quit • Refreshes every 30 seconds")

	full := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	if h := lipgloss.Height(full); h < m.height {
		full += strings.Repeat("\n", m.height-h-1)
	}
	return full
}

func (m Model) activeBox(width int, now time.Time) string {
	var b strings.Builder
	b.WriteString("ACTIVE TIMERS\n\n")

	active := 0
	for _, t := range m.timers {
		if !t.Active() {
			continue
		}
		active++
		b.WriteString(fmt.Sprintf("%s %s - %s\n",
			activeStyle.Render("●"), t.Task, format.Duration(t.Duration(now))))
	}
	if active == 0 {
		b.WriteString(footerStyle.Render("No active timers"))
	}
	return boxStyle.Width(width).Render(b.String())
}

func (m Model) progressBox(width int, now time.Time) string {
	r, err := report.Summarize(m.timers, report.Today, now)

	var subtotal, remaining time.Duration
	if err == nil {
		subtotal = r.Subtotal
		remaining = r.Remaining
	} else {
		remaining = report.WorkdayLength
	}

	pct := int(subtotal * 100 / report.WorkdayLength)
	barWidth := width - 10
	if barWidth < 20 {
		barWidth = 20
	}

	var remainingLine string
	if remaining < 0 {
		remainingLine = overtimeStyle.Render(format.Duration(-remaining) + " of overtime")
	} else {
		remainingLine = progressStyle.Render(format.Duration(remaining) + " to go")
	}

	return boxStyle.Width(width).Render(fmt.Sprintf(
		"WORKDAY PROGRESS\n\n%s %d%%\n%s",
		progressBar(pct, barWidth), pct, remainingLine,
	))
}

func (m Model) todayBox(width int, now time.Time) string {
	var b strings.Builder
	b.WriteString("TODAY\n\n")

	r, err := report.Summarize(m.timers, report.Today, now)
	if err != nil {
		b.WriteString(footerStyle.Render(err.Error()))
		return boxStyle.Width(width).Render(b.String())
	}

	for _, row := range r.Rows {
		line := fmt.Sprintf("%s - %s", row.Task, format.Duration(row.Duration))
		if row.InProgress {
			line += activeStyle.Render(" <- In Progress")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nTotal: " + format.Duration(r.Subtotal))
	return boxStyle.Width(width).Render(b.String())
}

func progressBar(pct, width int) string {
	if pct > 100 {
		pct = 100
	}
	filled := (pct * width) / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return activeStyle.Render(bar)
}

// Run shows the dashboard on the alternate screen until the user quits.
func Run(timers []timer.Timer, reload Reload) error {
	p := tea.NewProgram(New(timers, reload), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
