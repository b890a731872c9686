package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	message  string
	fallback string
	mask     bool
	validate func(string) error

	value   string
	errText string
	done    bool
	aborted bool
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		value := m.value
		if value == "" {
			value = m.fallback
		}
		if m.validate != nil {
			if err := m.validate(value); err != nil {
				// Invalid input never escapes the prompt; show the
				// problem and ask again.
				m.errText = err.Error()
				m.value = ""
				return m, nil
			}
		}
		m.value = value
		m.done = true
		return m, tea.Quit
	case "backspace":
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
		return m, nil
	}

	if key.Type == tea.KeyRunes && !key.Alt {
		m.value += string(key.Runes)
		m.errText = ""
	}
	return m, nil
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.message))
	b.WriteString(" ")
	if m.mask {
		b.WriteString(strings.Repeat("*", len(m.value)))
	} else {
		b.WriteString(m.value)
	}
	if m.value == "" && m.fallback != "" {
		b.WriteString(dimStyle.Render("(" + m.fallback + ")"))
	}
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	return b.String()
}

// Input asks a free-text question. An empty answer takes the fallback. When
// validate is non-nil the prompt loops until the answer passes.
func Input(message, fallback string, validate func(string) error) (string, error) {
	return runInput(inputModel{message: message, fallback: fallback, validate: validate})
}

// Password asks for a secret, echoing asterisks.
func Password(message string) (string, error) {
	return runInput(inputModel{message: message, mask: true})
}

func runInput(m inputModel) (string, error) {
	final, err := run(m)
	if err != nil {
		return "", err
	}
	result := final.(inputModel)
	if result.aborted || !result.done {
		return "", ErrAborted
	}
	return result.value, nil
}
