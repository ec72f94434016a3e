package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "Meme Stock Tracker"
	version = "v1.0.0"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	app, err := newApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}

	rootCmd := &cobra.Command{
		Use:     "memestock",
		Short:   "Daily AI-generated meme stock reports",
		Version: version,
		Long: appName + ` queries a generative-AI backend for a daily meme stock
report, saves it next to the installation, and manages a single daily
scheduled task that repeats the query unattended.

Run it with no arguments in a terminal for the interactive menu.`,
		Args: cobra.ArbitraryArgs,
		Run:  app.runDefaultEntry,
	}

	rootCmd.AddCommand(newRunCmd(app))
	rootCmd.AddCommand(newScheduleCmd(app))
	rootCmd.AddCommand(newDaemonCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runDefaultEntry routes a bare (or unrecognized) invocation: a terminal
// gets the interactive menu, anything else gets pointed at the subcommands.
func (a *app) runDefaultEntry(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "No terminal detected. Use 'memestock run' for unattended report generation.")
		return
	}
	if len(args) > 0 {
		fmt.Printf("Unrecognized argument %q, opening the menu.\n", args[0])
	}

	menu := newMenuUI(a)
	if err := menu.Run(); err != nil {
		log.Error().Err(err).Msg("Menu session failed")
	}
}
