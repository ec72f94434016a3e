package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Daemon fires a job once per day at a UTC wall-clock time using an
// in-process cron. It is the portable alternative to the OS bridge: the
// process stays in the foreground and the job runs unattended.
type Daemon struct {
	cron    *cron.Cron
	utcTime string
}

// NewDaemon schedules job daily at utcTime ("HH:MM", UTC).
func NewDaemon(utcTime string, job func()) (*Daemon, error) {
	hour, minute, err := parseTime(utcTime)
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithLocation(time.UTC))
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("failed to schedule daily job: %w", err)
	}

	return &Daemon{cron: c, utcTime: utcTime}, nil
}

// Start begins firing. It returns immediately; callers block on their own
// shutdown signal.
func (d *Daemon) Start() {
	d.cron.Start()
	log.Info().Str("utc", d.utcTime).Msg("Built-in daily scheduler started")
}

// Stop halts the cron and waits for a running job to finish.
func (d *Daemon) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Built-in daily scheduler stopped")
}

// Next reports when the job fires next.
func (d *Daemon) Next() time.Time {
	entries := d.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
