package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler writes backups to disk on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	dir     string
	secret  string
	version string
}

// NewScheduler returns a scheduler that writes sealed backups into dir.
func NewScheduler(dir, secret, version string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		dir:     dir,
		secret:  secret,
		version: version,
	}
}

// Start registers the schedule, a standard five-field cron expression or
// a descriptor like "@daily", and starts the scheduler in the background.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		path, err := s.WriteFile()
		if err != nil {
			log.Error().Err(err).Msg("scheduled backup failed")
			return
		}

		log.Info().Str("path", path).Msg("backup written")
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// WriteFile creates a backup, writes it to a timestamped file in the
// scheduler's directory and records the time in the lastBackup setting.
func (s *Scheduler) WriteFile() (string, error) {
	blob, err := Create(s.version, s.secret)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	now := time.Now().In(time.UTC)
	path := filepath.Join(s.dir, fmt.Sprintf("budgetflow-%s.backup", now.Format("2006-01-02T15-04-05")))
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return "", err
	}

	if err := models.SetSetting(models.SettingLastBackup, now.Format(time.RFC3339)); err != nil {
		return "", err
	}

	return path, nil
}
