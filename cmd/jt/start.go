package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/format"
	"github.com/jenjinstudios/jt/internal/prompt"
	"github.com/jenjinstudios/jt/internal/timeparse"
)

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new task timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			taskName, err := chooseTask(app)
			if err != nil {
				return err
			}

			answer, err := prompt.Input(
				"How long ago did you start this task? (Hit enter for 'now')",
				"0m",
				func(s string) error {
					if _, err := timeparse.Parse(s); err != nil {
						return fmt.Errorf("Sorry I could not understand your time. Try 1.25h, or 45m.")
					}
					return nil
				},
			)
			if err != nil {
				return err
			}
			backfill, err := timeparse.Parse(answer)
			if err != nil {
				return err
			}

			started := app.timers.Start(taskName, backfill)
			fmt.Printf("Starting task %s - %s\n", started.Task, format.Relative(started.Start, time.Now()))
			return app.saveAll()
		},
	}
}

// chooseTask runs the autocomplete picker, falling through to a free-text
// prompt when the custom row is chosen.
func chooseTask(a *appState) (string, error) {
	result, err := prompt.PickTask("Select a task to create a timer for", a.tasks)
	if err != nil {
		return "", err
	}
	if !result.Custom {
		return result.Task.Name, nil
	}

	name, err := prompt.Input("What is the custom task?", "Untitled", nil)
	if err != nil {
		return "", err
	}
	added := a.tasks.AddCustom(name)
	return added.Name, nil
}
