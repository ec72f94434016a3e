package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Water6446/Meme-Stock-Tracker/internal/scheduler"
	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// newRunCmd is the marker invocation the scheduled task fires. It always
// exits 0: an unattended failure is worth a log line, not a task-scheduler
// error state the operator will never see.
func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   scheduler.MarkerArg,
		Short: "Generate today's report once, non-interactively",
		Long:  "Runs one report generation and exits 0 regardless of outcome. This is the command the daily scheduled task invokes.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Info().Msg("Automated run initiated")
			if _, err := a.generateReport(context.Background(), viewer.Pager{}); err != nil {
				log.Error().Err(err).Msg("Automated run failed")
			}
			log.Info().Msg("Automated run complete")
		},
	}
}
