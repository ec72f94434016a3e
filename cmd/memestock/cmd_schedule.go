package main

import (
	"github.com/spf13/cobra"
)

// newScheduleCmd re-applies the configured daily task registration without
// entering the menu, for scripted setups.
func newScheduleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Register the daily OS scheduled task from the configured time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.applyScheduleTime(a.scheduleTimeUTC())
		},
	}
}
