// Package scheduler runs the background jobs: draining offline queues when
// connectivity returns and pruning old distress records.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/journal"
)

const (
	// syncInterval is how often the queue flush probe runs.
	syncInterval = 30 * time.Second
	// distressRetentionDays bounds how long per-entry distress rows are kept.
	distressRetentionDays = 180
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	scheduler gocron.Scheduler
	db        *db.DB
	svc       *journal.Service
	timezone  *time.Location
}

// New creates a new scheduler
func New(database *db.DB, svc *journal.Service, timezone string) (*Scheduler, error) {
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		tz = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(tz))
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler: s,
		db:        database,
		svc:       svc,
		timezone:  tz,
	}, nil
}

// Start starts the scheduler and registers all jobs
func (s *Scheduler) Start() error {
	// Probe connectivity and drain offline queues every 30 seconds
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(syncInterval),
		gocron.NewTask(s.flushQueues),
		gocron.WithName("flush-queues"),
	)
	if err != nil {
		return err
	}

	// Prune old distress rows daily at 03:00
	_, err = s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(s.pruneDistress),
		gocron.WithName("prune-distress"),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Println("Scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) flushQueues() {
	ctx, cancel := context.WithTimeout(context.Background(), syncInterval)
	defer cancel()

	if err := s.svc.FlushAll(ctx); err != nil {
		log.Printf("queue flush: %v", err)
	}
}

func (s *Scheduler) pruneDistress() {
	cutoff := time.Now().In(s.timezone).AddDate(0, 0, -distressRetentionDays)
	n, err := s.db.PruneDistressBefore(cutoff)
	if err != nil {
		log.Printf("pruning distress records: %v", err)
		return
	}
	if n > 0 {
		log.Printf("pruned %d distress records older than %d days", n, distressRetentionDays)
	}
}
