package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Water6446/Meme-Stock-Tracker/internal/config"
	"github.com/Water6446/Meme-Stock-Tracker/internal/editor"
)

var newlineRun = regexp.MustCompile(`[ \t]*\r?\n[ \t\r\n]*`)

// normalizePrompt folds an edited prompt onto a single line: each run of
// line breaks (with any indentation around it) becomes one space, while
// interior spaces and tabs stay verbatim.
func normalizePrompt(s string) string {
	return strings.TrimSpace(newlineRun.ReplaceAllString(s, " "))
}

func (ui *MenuUI) settingsLoop() {
	for {
		fmt.Print(`
══════════════════════════════════════════════
                Settings Menu
══════════════════════════════════════════════

  1) Set/Update Schedule Time (UTC)
  2) Update API Key
  3) Update GenAI Model
  4) View/Edit API Prompt
  5) Toggle GUI Pop-up
  6) Back to Main Menu

`)
		choice := ui.readLine("Please enter your choice (1-6): ")
		if ui.eof {
			return
		}

		switch choice {
		case "1":
			ui.updateScheduleTime()
		case "2":
			ui.updateAPIKey()
		case "3":
			ui.updateModel()
		case "4":
			ui.editPrompt()
		case "5":
			ui.toggleGUI()
		case "6":
			return
		default:
			fmt.Println("Invalid selection. Please try again.")
		}
	}
}

func (ui *MenuUI) updateScheduleTime() {
	fmt.Printf("\nThe current scheduled time is %s UTC.\n", ui.app.scheduleTimeUTC())
	timeStr := ui.readLine("Enter the new time to run daily (24-hour UTC format, e.g. 13:30): ")

	if err := ui.app.applyScheduleTime(timeStr); err != nil {
		fmt.Printf("\nERROR: %v\n", err)
	} else {
		fmt.Printf("\nSUCCESS: Schedule time updated to %s UTC.\n", timeStr)
	}
	ui.pause()
}

func (ui *MenuUI) updateAPIKey() {
	newKey := ui.readLine("Please enter your new Google GenAI API key: ")
	switch {
	case newKey == "":
		fmt.Println("\nAPI key cannot be empty. No changes made.")
	case ui.app.store.Set(config.SectionAPI, config.KeyAPIKey, newKey):
		fmt.Println("\nSUCCESS: API key has been updated successfully!")
	default:
		fmt.Println("\nERROR: Failed to update API key.")
	}
	ui.pause()
}

func (ui *MenuUI) updateModel() {
	current := ui.app.store.Get(config.SectionAPI, config.KeyModel, config.DefaultModel)
	fmt.Printf("\nThe current GenAI model is: %s\n", current)
	newModel := ui.readLine("Enter the new model name (e.g. gemini-2.5-pro): ")

	switch {
	case newModel == "":
		fmt.Println("\nModel name cannot be empty. No changes made.")
	case ui.app.store.Set(config.SectionAPI, config.KeyModel, newModel):
		fmt.Println("\nSUCCESS: GenAI model has been updated successfully!")
	default:
		fmt.Println("\nERROR: Failed to update the model name.")
	}
	ui.pause()
}

// editPrompt round-trips the prompt template through the OS default text
// editor on a temp file, then saves the result if it actually changed.
func (ui *MenuUI) editPrompt() {
	current := ui.app.store.Get(config.SectionPrompt, config.KeyTemplate, config.DefaultPromptTemplate)

	tmp, err := os.CreateTemp("", "memestock-prompt-*.txt")
	if err != nil {
		fmt.Printf("\nERROR: Could not create a temporary file: %v\n", err)
		ui.pause()
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(current); err != nil {
		tmp.Close()
		fmt.Printf("\nERROR: Could not write the temporary file: %v\n", err)
		ui.pause()
		return
	}
	tmp.Close()

	divider := strings.Repeat("-", 40)
	fmt.Printf("\nHere is the current prompt:\n\n%s\n%s\n%s\n", divider, current, divider)
	fmt.Println("\nOpening prompt in your default text editor...")
	fmt.Println("\nUse {today_date} in your prompt to insert today's date automatically.")
	fmt.Println("Please save your changes and close the editor to continue.")

	if err := editor.Open(tmpPath); err != nil {
		fmt.Printf("\nERROR: %v\nYou can edit the file manually: %s\n", err, filepath.Clean(tmpPath))
	}

	ui.readLine("\nPress Enter here after you have saved and closed the text editor...")

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		fmt.Printf("\nERROR: Could not read the edited prompt back: %v\n", err)
		ui.pause()
		return
	}
	// The flat config file stores one line per value.
	newPrompt := normalizePrompt(string(edited))

	switch {
	case newPrompt == "":
		fmt.Println("\nPrompt is empty. No changes made.")
	case newPrompt == current:
		fmt.Println("\nNo changes detected in the prompt.")
	case ui.app.store.Set(config.SectionPrompt, config.KeyTemplate, newPrompt):
		fmt.Printf("\nSUCCESS: Prompt template has been updated successfully!\n")
		fmt.Printf("Here is the new prompt:\n\n%s\n%s\n%s\n", divider, newPrompt, divider)
	default:
		fmt.Println("\nERROR: Failed to update the prompt in the configuration file.")
	}
	ui.pause()
}

func (ui *MenuUI) toggleGUI() {
	enabled := strings.EqualFold(ui.app.store.Get(config.SectionSettings, config.KeyShowGUI, config.DefaultShowGUI), "true")

	newValue := "true"
	status := "ENABLED"
	if enabled {
		newValue = "false"
		status = "DISABLED"
	}

	if ui.app.store.Set(config.SectionSettings, config.KeyShowGUI, newValue) {
		fmt.Printf("\nSUCCESS: GUI pop-up has been %s.\n", status)
	} else {
		fmt.Println("\nERROR: Failed to update the GUI setting.")
	}
	ui.pause()
}
