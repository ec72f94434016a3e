//go:build windows

package scheduler

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// osBackend registers the daily task through schtasks.exe.
type osBackend struct {
	executable string
}

// NewOSBackend returns the host scheduler bridge. executable is the path
// the registered task re-invokes with the marker argument.
func NewOSBackend(executable string) Backend {
	return &osBackend{executable: executable}
}

func (b *osBackend) Supported() bool { return true }

func (b *osBackend) Apply(utcTime string) error {
	localTime, err := LocalTimeFor(utcTime, time.Now(), time.Local)
	if err != nil {
		return err
	}

	action := fmt.Sprintf(`"%s" %s`, b.executable, MarkerArg)
	cmd := exec.Command("schtasks", "/create",
		"/sc", "DAILY",
		"/tn", TaskName,
		"/tr", action,
		"/st", localTime,
		"/f")

	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Error().Err(err).Str("output", strings.TrimSpace(string(out))).
			Msg("schtasks registration failed")
		return fmt.Errorf("failed to create scheduled task (try running as Administrator): %w", err)
	}

	log.Info().Str("task", TaskName).Str("utc", utcTime).Str("local", localTime).
		Msg("Scheduled task registered")
	return nil
}
