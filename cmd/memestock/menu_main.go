package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// MenuUI is the interactive interface. The subcommands exist for
// automation; a human in a terminal gets this.
type MenuUI struct {
	app *app
	in  *bufio.Reader
	eof bool
}

func newMenuUI(a *app) *MenuUI {
	return &MenuUI{app: a, in: bufio.NewReader(os.Stdin)}
}

// Run drives the main menu loop until the user exits. No error inside a
// menu action ends the session; everything is reported and the loop
// continues.
func (ui *MenuUI) Run() error {
	log.Info().Msg("Starting interactive menu")
	ui.showBanner()

	for {
		ui.showMainMenu()
		choice := ui.readLine("Please enter your choice (1-4): ")
		if ui.eof {
			fmt.Println("\nInput closed. Exiting.")
			return nil
		}

		switch strings.ToLower(choice) {
		case "1":
			ui.handleScheduleTask()
		case "2":
			ui.handleRunNow()
		case "3":
			ui.settingsLoop()
		case "4":
			fmt.Println("Exiting.")
			return nil
		case "cookie":
			ui.showEasterEgg()
		default:
			fmt.Println("Invalid selection. Please try again.")
		}
	}
}

func (ui *MenuUI) showBanner() {
	fmt.Printf(`
╔══════════════════════════════════════════════╗
║          %s %s           ║
║     Daily AI-generated meme stock reports    ║
╚══════════════════════════════════════════════╝
`, appName, version)
}

func (ui *MenuUI) showMainMenu() {
	fmt.Print(`
══════════════════════════════════════════════
        Meme Stock Tracker Management
══════════════════════════════════════════════

  1) Schedule Daily Task
  2) Run Report Now
  3) Settings
  4) Exit

`)
}

func (ui *MenuUI) handleScheduleTask() {
	fmt.Printf("\nApplying daily schedule for %s UTC...\n", ui.app.scheduleTimeUTC())
	if err := ui.app.applyScheduleTime(ui.app.scheduleTimeUTC()); err != nil {
		fmt.Printf("\nERROR: %v\n", err)
	}
	ui.pause()
}

func (ui *MenuUI) handleRunNow() {
	_, err := ui.app.generateReport(context.Background(), viewer.Pager{})
	if err != nil {
		// generateReport already printed the operator-facing message.
		log.Debug().Err(err).Msg("Manual run failed")
	}
	ui.pause()
}

// readLine prompts and returns one trimmed input line. A closed stdin sets
// the eof flag so the loops can wind down instead of spinning.
func (ui *MenuUI) readLine(promptText string) string {
	fmt.Print(promptText)
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		ui.eof = true
	}
	return strings.TrimSpace(line)
}

func (ui *MenuUI) pause() {
	ui.readLine("\nPress Enter to return to the menu...")
}
