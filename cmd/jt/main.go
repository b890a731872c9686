// Package main is the jt binary: a personal task-timer CLI with optional
// JIRA task sync.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/prompt"
	"github.com/jenjinstudios/jt/internal/storage"
	"github.com/jenjinstudios/jt/internal/task"
	"github.com/jenjinstudios/jt/internal/timer"
)

// appState carries the loaded documents and the stores built from them for
// the lifetime of one command.
type appState struct {
	gateway *storage.Gateway
	tasks   *task.Store
	timers  *timer.Store
	opts    *storage.Options
}

func loadApp() (*appState, error) {
	gateway, err := storage.NewGateway()
	if err != nil {
		return nil, err
	}
	return loadAppFrom(gateway)
}

func loadAppFrom(gateway *storage.Gateway) (*appState, error) {
	tasks, err := gateway.LoadTasks()
	if err != nil {
		return nil, err
	}
	timers, err := gateway.LoadTimers()
	if err != nil {
		return nil, err
	}
	opts, err := gateway.LoadOptions()
	if err != nil {
		return nil, err
	}
	return &appState{
		gateway: gateway,
		tasks:   task.NewStore(tasks),
		timers:  timer.NewStore(timers),
		opts:    opts,
	}, nil
}

// saveAll rewrites the three documents. Each write is an independent
// whole-document replacement; there is no transaction across them.
func (a *appState) saveAll() error {
	if err := a.gateway.SaveTasks(a.tasks.All()); err != nil {
		return err
	}
	if err := a.gateway.SaveTimers(a.timers.All()); err != nil {
		return err
	}
	return a.gateway.SaveOptions(a.opts)
}

var app *appState

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jt",
		Short: "A handy little CLI timer with JIRA integration",
		Long: `jt tracks the time you spend on tasks. Start a timer, forget
about it, finish it later, then ask for a log of your day.

Durations like the start backfill are written as value+unit pairs
(units: d, h, m, s), for example "1.25h" or "45m".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = loadApp()
			if err != nil {
				return err
			}
			// First invocation walks through setup before any command
			// runs, the setup command does it explicitly.
			if !app.opts.Setup && cmd.Name() != "setup" {
				return runSetup(app)
			}
			return nil
		},
	}

	cmd.AddCommand(
		startCmd(),
		listCmd(),
		logCmd(),
		finishCmd(),
		syncCmd(),
		setupCmd(),
		dashboardCmd(),
	)
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
