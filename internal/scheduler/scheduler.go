// Package scheduler triggers the daily historical backfill.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"stockdock/internal/history"
)

// Scheduler runs the historical backfill once per day.
type Scheduler struct {
	Cron    *cron.Cron
	History *history.Service
	Ctx     context.Context

	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, hist *history.Service) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		History: hist,
		Ctx:     ctx,
		now:     time.Now,
	}
}

// Register adds the daily backfill task under the given cron spec.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyBackfill); err != nil {
		return fmt.Errorf("register daily backfill: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyBackfill()
}

// dailyBackfill fetches yesterday's bars for the whole universe. Every
// failure is logged and discarded so the next day's trigger is never
// affected.
func (s *Scheduler) dailyBackfill() {
	yesterday := s.now().AddDate(0, 0, -1).Format("2006-01-02")
	log.Printf("[INFO] scheduled backfill started for date %s", yesterday)

	bars, err := s.History.BackfillAll(s.Ctx, yesterday, yesterday)
	if err != nil {
		log.Printf("[ERROR] scheduled backfill failed for date %s: %v", yesterday, err)
		return
	}
	log.Printf("[INFO] scheduled backfill completed for date %s, %d bars", yesterday, len(bars))
}
