package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Water6446/Meme-Stock-Tracker/internal/config"
	"github.com/Water6446/Meme-Stock-Tracker/internal/gemini"
	"github.com/Water6446/Meme-Stock-Tracker/internal/report"
	"github.com/Water6446/Meme-Stock-Tracker/internal/scheduler"
	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// app holds everything the commands and the menu share: the config store,
// the backend client, and the scheduler bridge. Built once at startup.
type app struct {
	baseDir string
	exePath string
	store   *config.Store
	backend report.Backend
	sched   scheduler.Backend
}

func newApp() (*app, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot locate executable: %w", err)
	}
	baseDir := filepath.Dir(exe)

	store := config.LoadDir(baseDir)
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		store.Override(config.SectionAPI, config.KeyAPIKey, key)
	}

	return &app{
		baseDir: baseDir,
		exePath: exe,
		store:   store,
		backend: gemini.NewClient(gemini.Config{}),
		sched:   scheduler.NewOSBackend(exe),
	}, nil
}

// generator assembles the report pipeline around the given viewer.
func (a *app) generator(v viewer.Renderer) *report.Generator {
	return &report.Generator{
		Store:   a.store,
		Backend: a.backend,
		Viewer:  v,
		OutDir:  a.baseDir,
	}
}

// generateReport runs one report generation, translating the failure
// taxonomy into operator-facing messages. Returns the report path on
// success.
func (a *app) generateReport(ctx context.Context, v viewer.Renderer) (string, error) {
	path, err := a.generator(v).Generate(ctx)
	if err != nil {
		if errors.Is(err, report.ErrNotConfigured) {
			fmt.Println("\nERROR: API key not set. Please go to Settings to add your key.")
		} else {
			fmt.Printf("\nERROR: %v\n", err)
		}
		return "", err
	}
	fmt.Printf("SUCCESS: Report saved to '%s'\n", path)
	return path, nil
}

// scheduleTimeUTC reads the configured daily trigger.
func (a *app) scheduleTimeUTC() string {
	return a.store.Get(config.SectionScheduler, config.KeyTimeUTC, config.DefaultScheduleTimeUTC)
}

// applyScheduleTime validates timeStr, persists it, and re-registers the OS
// task. A platform without a scheduler bridge is a notice, not a failure:
// the stored time still drives daemon mode. An invalid time leaves the
// stored value untouched.
func (a *app) applyScheduleTime(timeStr string) error {
	if !scheduler.ValidTime(timeStr) {
		return fmt.Errorf("invalid time %q: use 24-hour HH:MM format (e.g. 09:25 or 14:00)", timeStr)
	}
	if !a.store.Set(config.SectionScheduler, config.KeyTimeUTC, timeStr) {
		return errors.New("failed to save the new time")
	}

	if err := a.sched.Apply(timeStr); err != nil {
		if errors.Is(err, scheduler.ErrUnsupported) {
			fmt.Println("\n" + err.Error() + ". Use 'memestock daemon' to run the built-in scheduler instead.")
			return nil
		}
		return err
	}

	fmt.Printf("SUCCESS: Task '%s' scheduled for %s UTC.\n", scheduler.TaskName, timeStr)
	return nil
}
