package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/format"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List currently active timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := app.timers.Active()
			if len(active) == 0 {
				fmt.Println("No active timers found")
				return nil
			}

			now := time.Now()
			fmt.Println("Active tasks:")
			for _, t := range active {
				fmt.Printf("%s - started %s\n", t.Task, format.Relative(t.Start, now))
			}
			return nil
		},
	}
}
