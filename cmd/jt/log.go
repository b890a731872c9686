package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/format"
	"github.com/jenjinstudios/jt/internal/report"
)

func logCmd() *cobra.Command {
	var timePeriod string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the task log",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := report.All
			switch strings.ToLower(timePeriod) {
			case "":
			case "today":
				scope = report.Today
			case "yesterday":
				scope = report.Yesterday
			default:
				return fmt.Errorf("unknown time period %q (use today or yesterday)", timePeriod)
			}

			r, err := report.Summarize(app.timers.All(), scope, time.Now())
			if err != nil {
				var empty *report.EmptyError
				if errors.As(err, &empty) {
					// Nothing to show is informational, not a failure.
					fmt.Println(empty.Error())
					return nil
				}
				return err
			}

			printReport(r)
			return nil
		},
	}
	cmd.Flags().StringVarP(&timePeriod, "time", "t", "", "time period: today|yesterday")
	return cmd
}

func printReport(r *report.Report) {
	switch r.Scope {
	case report.Today:
		fmt.Println("Tasks you have been working on today:")
	case report.Yesterday:
		fmt.Println("Tasks you were working on yesterday:")
	default:
		fmt.Println("All tasks you have been working on:")
	}

	for _, row := range r.Rows {
		line := fmt.Sprintf("%s - %s", row.Task, format.Duration(row.Duration))
		if row.InProgress {
			line += " <- In Progress"
		}
		fmt.Println(line)
	}

	fmt.Printf("Total: %s\n", format.Duration(r.Subtotal))
	if r.ShowRemaining {
		if r.Remaining < 0 {
			fmt.Printf("You are %s over a full workday\n", format.Duration(-r.Remaining))
		} else {
			fmt.Printf("You still need to work for %s\n", format.Duration(r.Remaining))
		}
	}
}
