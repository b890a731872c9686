package main

import (
	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/dashboard"
	"github.com/jenjinstudios/jt/internal/timer"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show a live dashboard of timers and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			reload := func() ([]timer.Timer, error) {
				return app.gateway.LoadTimers()
			}
			return dashboard.Run(app.timers.All(), reload)
		},
	}
}
