// Package task holds the set of known task names and supports the
// autocomplete search used when starting a timer.
package task

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Task is a selectable unit of work. ID is stable: a JIRA issue key for
// synced tasks, a generated local id for custom ones. Tasks are never
// mutated after creation.
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result is one row of a search. Either Task is set, or Custom is true and
// the row stands for the "enter a custom task" action.
type Result struct {
	Task   Task
	Custom bool
}

// Label returns the text shown for this row in a picker.
func (r Result) Label() string {
	if r.Custom {
		return "Custom task.."
	}
	return r.Task.Name
}

// Store owns the in-memory task set for a single invocation.
type Store struct {
	tasks []Task
}

// NewStore builds a store around a loaded task list.
func NewStore(tasks []Task) *Store {
	return &Store{tasks: tasks}
}

// All returns the task set in store order.
func (s *Store) All() []Task {
	return s.tasks
}

// Search returns tasks matching the query in store order, always followed by
// the custom-task row. An empty query matches everything. The query is tried
// as a case-insensitive regular expression first; if it does not compile it
// is treated as a plain substring.
func (s *Store) Search(query string) []Result {
	matched := s.tasks
	if query != "" {
		matched = nil
		match := matcher(query)
		for _, t := range s.tasks {
			if match(t.Name) {
				matched = append(matched, t)
			}
		}
	}

	results := make([]Result, 0, len(matched)+1)
	for _, t := range matched {
		results = append(results, Result{Task: t})
	}
	return append(results, Result{Custom: true})
}

func matcher(query string) func(string) bool {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		lower := strings.ToLower(query)
		return func(name string) bool {
			return strings.Contains(strings.ToLower(name), lower)
		}
	}
	return re.MatchString
}

// NameByID resolves a task id to its display name.
func (s *Store) NameByID(id string) (string, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Name, nil
		}
	}
	return "", ErrNotFound
}

// AddCustom appends a free-text task. The generated id keeps custom tasks
// distinct from provider-sourced issue keys.
func (s *Store) AddCustom(name string) Task {
	t := Task{
		ID:   "custom-" + uuid.New().String(),
		Name: name,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// ReplaceAll swaps in a freshly synced task set. Callers only invoke this
// after a fully successful provider fetch, so a failed sync never touches
// the existing set.
func (s *Store) ReplaceAll(tasks []Task) {
	s.tasks = tasks
}
