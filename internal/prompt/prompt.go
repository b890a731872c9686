// Package prompt holds the interactive question flows: an autocomplete task
// picker, validated text input, list selection and yes/no confirmation. Each
// prompt is a small bubbletea model run to completion on the caller's
// terminal.
package prompt

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user backs out of a prompt with esc or
// ctrl+c.
var ErrAborted = errors.New("prompt aborted")

var (
	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	return final, nil
}
