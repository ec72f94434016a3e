package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Water6446/Meme-Stock-Tracker/internal/scheduler"
	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// newDaemonCmd runs the built-in daily scheduler in the foreground. It is
// the portable alternative to the OS task registration: the process stays
// up and fires the generator at the configured UTC time every day.
func newDaemonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Stay running and generate the report daily at the configured UTC time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			utcTime := a.scheduleTimeUTC()

			d, err := scheduler.NewDaemon(utcTime, func() {
				log.Info().Msg("Scheduled run initiated")
				// Unattended: the window stays closed, the file is the product.
				if _, err := a.generateReport(context.Background(), viewer.Noop{}); err != nil {
					log.Error().Err(err).Msg("Scheduled run failed")
				}
			})
			if err != nil {
				return err
			}

			d.Start()
			log.Info().Str("utc", utcTime).Time("next", d.Next()).Msg("Waiting for the next daily run, Ctrl+C to stop")

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			d.Stop()
			return nil
		},
	}
}
