// Package scheduler registers the daily unattended run. The OS bridge is a
// capability: only Windows gets a real registration, everything else reports
// unsupported. A portable in-process fallback lives in daemon.go.
package scheduler

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TaskName is the fixed name of the managed OS task. Every Apply replaces
// the previous registration under this name wholesale.
const TaskName = "DailyMemeStockReport"

// MarkerArg is the CLI argument the registered task invokes the program
// with to select non-interactive execution.
const MarkerArg = "run"

// ErrUnsupported reports that this platform has no OS scheduler bridge.
var ErrUnsupported = errors.New("task scheduling is only supported on Windows")

// Backend registers the recurring daily task for a UTC wall-clock time.
type Backend interface {
	// Apply parses utcTime ("HH:MM") and create-or-replaces the daily task.
	Apply(utcTime string) error
	// Supported reports whether Apply can do anything on this platform.
	Supported() bool
}

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidTime reports whether s is a strict 24-hour "HH:MM" string. Single
// digit hours ("9:25") and out-of-range values ("25:70") are rejected.
func ValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// parseTime splits a validated "HH:MM" string.
func parseTime(s string) (hour, minute int, err error) {
	if !ValidTime(s) {
		return 0, 0, fmt.Errorf("invalid schedule time %q, expected 24-hour HH:MM", s)
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute, nil
}

// LocalTimeFor converts a UTC "HH:MM" into the equivalent local wall-clock
// "HH:MM", anchored on now's calendar day. Anchoring on today means the
// result is off by the offset delta if a DST transition falls between now
// and the task's next fire; that matches the existing behavior and is left
// uncorrected.
func LocalTimeFor(utcTime string, now time.Time, loc *time.Location) (string, error) {
	hour, minute, err := parseTime(utcTime)
	if err != nil {
		return "", err
	}

	nowUTC := now.UTC()
	target := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), hour, minute, 0, 0, time.UTC)
	return target.In(loc).Format("15:04"), nil
}
