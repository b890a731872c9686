package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jenjinstudios/jt/internal/task"
)

const maxVisibleResults = 10

type pickerModel struct {
	message string
	store   *task.Store
	query   string
	results []task.Result
	cursor  int
	choice  *task.Result
	aborted bool
}

func newPickerModel(message string, store *task.Store) pickerModel {
	return pickerModel{
		message: message,
		store:   store,
		results: store.Search(""),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		if len(m.results) > 0 {
			chosen := m.results[m.cursor]
			m.choice = &chosen
		}
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.refilter()
		}
		return m, nil
	}

	if key.Type == tea.KeyRunes && !key.Alt {
		m.query += string(key.Runes)
		m.refilter()
	}
	return m, nil
}

func (m *pickerModel) refilter() {
	m.results = m.store.Search(m.query)
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.message))
	b.WriteString(" ")
	b.WriteString(m.query)
	b.WriteString("\n")

	// Window the list around the cursor so long task sets stay readable.
	start := 0
	if m.cursor >= maxVisibleResults {
		start = m.cursor - maxVisibleResults + 1
	}
	end := start + maxVisibleResults
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := start; i < end; i++ {
		label := m.results[i].Label()
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	if len(m.results) > end {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ...%d more", len(m.results)-end)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("type to filter, ↑/↓ to move, enter to select"))
	b.WriteString("\n")
	return b.String()
}

// PickTask runs the autocomplete picker over the store's tasks. The returned
// result is either a concrete task or the custom-task row, which callers
// follow up with a free-text prompt.
func PickTask(message string, store *task.Store) (task.Result, error) {
	final, err := run(newPickerModel(message, store))
	if err != nil {
		return task.Result{}, err
	}
	m := final.(pickerModel)
	if m.aborted || m.choice == nil {
		return task.Result{}, ErrAborted
	}
	return *m.choice, nil
}
