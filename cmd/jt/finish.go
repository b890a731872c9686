package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/format"
	"github.com/jenjinstudios/jt/internal/prompt"
)

func finishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish a task timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := app.timers.Active()
			if len(active) == 0 {
				fmt.Println("No active timers found")
				return nil
			}

			now := time.Now()
			choices := make([]string, len(active))
			for i, t := range active {
				choices[i] = fmt.Sprintf("%s - Started %s", t.Task, format.Relative(t.Start, now))
			}

			idx, err := prompt.Select("Select a timer to finish", choices)
			if err != nil {
				return err
			}

			finished, err := app.timers.Finish(active[idx].ID)
			if err != nil {
				return fmt.Errorf("can't find the timer: %w", err)
			}

			fmt.Printf("Stopped timer for %s\n", finished.Task)
			return app.saveAll()
		},
	}
}
