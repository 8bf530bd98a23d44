// Package scheduler wraps robfig/cron with the two triggers the hunter
// needs: an every-N-minutes poll and a daily time-of-day report.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"go-hh-hunter/internal/config"
	"go-hh-hunter/internal/models"
)

type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler pinned to the UTC+3 reporting zone, so the daily
// trigger fires at the configured wall-clock time regardless of where the
// process runs.
func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(models.ReportLocation)),
	}
}

// Every registers fn to run every given number of minutes.
func (s *Scheduler) Every(minutes int, fn func()) error {
	if minutes < 1 {
		return fmt.Errorf("interval must be at least 1 minute, got %d", minutes)
	}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %dm", minutes), fn)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	return nil
}

// DailyAt registers fn to run once a day at the given "HH:MM".
func (s *Scheduler) DailyAt(timeOfDay string, fn func()) error {
	hour, minute, err := config.ParseStatsTime(timeOfDay)
	if err != nil {
		return err
	}
	_, err = s.cron.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), fn)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("⏰ Scheduler started")
}

// Stop shuts the scheduler down; already-running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("⏰ Scheduler stopped")
}
