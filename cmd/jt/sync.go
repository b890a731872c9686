package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/jira"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the task list from JIRA",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.opts.UseJira || !app.opts.LoggedIn {
				return fmt.Errorf("JIRA integration is not configured; run 'jt setup' first")
			}
			if err := syncTasks(cmd.Context(), app); err != nil {
				return err
			}
			return app.gateway.SaveTasks(app.tasks.All())
		},
	}
}

// syncTasks pulls every issue page and swaps the task set in one go. On any
// failure the existing set is left untouched.
func syncTasks(ctx context.Context, a *appState) error {
	client := jira.NewClient(a.opts.BaseURL)
	client.Session = jira.Session(a.opts.Session)

	fmt.Println("Syncing tasks...")
	tasks, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("sync failed, keeping existing tasks: %w", err)
	}
	a.tasks.ReplaceAll(tasks)
	fmt.Printf("Synced %d tasks\n", len(tasks))
	return nil
}
