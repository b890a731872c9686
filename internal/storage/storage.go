// Package storage persists the three jt documents (tasks, timers, options)
// as JSON files in the user's home directory. Each document is read in full
// at startup, created empty when missing, and rewritten in full after a
// mutating command.
//
// The three saves are independent whole-document replacements with no
// transaction across them: a failure partway leaves a mixed old/new state.
// There is also no cross-process locking; two concurrent invocations can
// lose updates. Both are accepted limitations of the format.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jenjinstudios/jt/internal/task"
	"github.com/jenjinstudios/jt/internal/timer"
)

const (
	TasksFile   = ".jt-tasks.json"
	TimersFile  = ".jt-timers.json"
	OptionsFile = ".jt-options.json"
)

// Session is the stored JIRA session cookie.
type Session struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// Options is the persisted process-wide state: setup progress plus the
// JIRA connection details collected by the setup flow.
type Options struct {
	Setup    bool    `json:"setup"`
	UseJira  bool    `json:"useJira"`
	LoggedIn bool    `json:"loggedIn"`
	BaseURL  string  `json:"baseURL,omitempty"`
	Username string  `json:"username,omitempty"`
	Session  Session `json:"session,omitempty"`
}

// Gateway reads and writes the jt documents under Dir.
type Gateway struct {
	Dir string
}

// NewGateway builds a gateway rooted at the user's home directory.
func NewGateway() (*Gateway, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locate home directory: %w", err)
	}
	return &Gateway{Dir: home}, nil
}

// LoadTasks reads the tasks document, creating an empty one when absent.
func (g *Gateway) LoadTasks() ([]task.Task, error) {
	var tasks []task.Task
	if err := g.load(TasksFile, &tasks, []task.Task{}); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTasks replaces the tasks document.
func (g *Gateway) SaveTasks(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return g.save(TasksFile, tasks)
}

// LoadTimers reads the timers document, creating an empty one when absent.
func (g *Gateway) LoadTimers() ([]timer.Timer, error) {
	var timers []timer.Timer
	if err := g.load(TimersFile, &timers, []timer.Timer{}); err != nil {
		return nil, err
	}
	return timers, nil
}

// SaveTimers replaces the timers document.
func (g *Gateway) SaveTimers(timers []timer.Timer) error {
	if timers == nil {
		timers = []timer.Timer{}
	}
	return g.save(TimersFile, timers)
}

// LoadOptions reads the options document, creating a default one when
// absent.
func (g *Gateway) LoadOptions() (*Options, error) {
	var opts Options
	if err := g.load(OptionsFile, &opts, Options{}); err != nil {
		return nil, err
	}
	return &opts, nil
}

// SaveOptions replaces the options document.
func (g *Gateway) SaveOptions(opts *Options) error {
	return g.save(OptionsFile, opts)
}

// load decodes the named document into out. A missing file is first-use:
// the default is written out and returned. Any other failure is fatal to
// the command; callers must not proceed on stale or empty state.
func (g *Gateway) load(name string, out, def any) error {
	path := filepath.Join(g.Dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if err := g.save(name, def); err != nil {
			return err
		}
		f, err = os.Open(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// save writes the whole document via a temp file and rename, so a crash
// mid-write never leaves a torn document behind.
func (g *Gateway) save(name string, doc any) error {
	path := filepath.Join(g.Dir, name)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
