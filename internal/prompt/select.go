package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	message string
	choices []string
	cursor  int
	done    bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c", "q":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.message))
	b.WriteString("\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("↑/↓ to move, enter to select"))
	b.WriteString("\n")
	return b.String()
}

// Select asks the user to choose one of the listed options and returns its
// index.
func Select(message string, choices []string) (int, error) {
	final, err := run(selectModel{message: message, choices: choices})
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.aborted || !m.done {
		return 0, ErrAborted
	}
	return m.cursor, nil
}

type confirmModel struct {
	message string
	answer  bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return questionStyle.Render(m.message) + " " + dimStyle.Render("[y/N]") + "\n"
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(message string) (bool, error) {
	final, err := run(confirmModel{message: message})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}
