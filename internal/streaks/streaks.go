// Package streaks maintains per-user usage streaks and awards
// achievements and reward points as post-commit side effects of a
// successful entry.
package streaks

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/models"
)

const dayLayout = "2006-01-02"

// Achievement keys.
const (
	KeyFirstEntry     = "first_entry"
	KeyTenEntries     = "ten_entries"
	KeyFiftyEntries   = "fifty_entries"
	KeyHundredEntries = "hundred_entries"
	KeyThreeDayStreak = "three_day_streak"
	KeyWeekStreak     = "week_streak"
	KeyMonthStreak    = "month_streak"
)

type threshold struct {
	key   string
	count int
}

// Ordered threshold tables. Evaluation walks these in order so grants
// arrive lowest-first.
var entryThresholds = []threshold{
	{KeyFirstEntry, 1},
	{KeyTenEntries, 10},
	{KeyFiftyEntries, 50},
	{KeyHundredEntries, 100},
}

var streakThresholds = []threshold{
	{KeyThreeDayStreak, 3},
	{KeyWeekStreak, 7},
	{KeyMonthStreak, 30},
}

// Points granted per reward event.
var eventPoints = map[string]int{
	models.EventJournalEntry:           10,
	models.EventTransformationComplete: 15,
	models.EventActionCompleted:        20,
}

// Engine is the streak and achievement accounting engine.
type Engine struct {
	db    *db.DB
	clock clockwork.Clock
}

// New creates an Engine over the local store with the given clock.
func New(database *db.DB, clock clockwork.Clock) *Engine {
	return &Engine{db: database, clock: clock}
}

// RecordActivity updates the user's streak for the given day: a repeat of
// the last-active day is a no-op, the day after increments, anything else
// resets to 1. Safe to repeat with the same day (idempotent retry).
func (e *Engine) RecordActivity(userID string, today time.Time) error {
	day := today.Format(dayLayout)

	state, err := e.db.GetStreak(userID)
	if err != nil {
		return fmt.Errorf("reading streak: %w", err)
	}

	streak := 1
	if state != nil && state.LastActive != "" {
		switch state.LastActive {
		case day:
			return nil
		case today.AddDate(0, 0, -1).Format(dayLayout):
			streak = state.CurrentStreak + 1
		}
	}

	if err := e.db.UpsertStreak(userID, streak, day); err != nil {
		return fmt.Errorf("writing streak: %w", err)
	}
	return nil
}

// EvaluateAchievements compares the current streak and lifetime entry
// count against the threshold tables and returns newly crossed keys. Each
// key is granted at most once per user; grants are persisted before being
// returned so a crash after return cannot duplicate them on retry.
func (e *Engine) EvaluateAchievements(userID string) ([]string, error) {
	granted, err := e.db.GetAchievements(userID)
	if err != nil {
		return nil, fmt.Errorf("reading achievements: %w", err)
	}

	entryCount, err := e.db.CountEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("counting entries: %w", err)
	}

	streak := 0
	if state, err := e.db.GetStreak(userID); err != nil {
		return nil, fmt.Errorf("reading streak: %w", err)
	} else if state != nil {
		streak = state.CurrentStreak
	}

	var fresh []string
	for _, t := range entryThresholds {
		if entryCount >= t.count && !granted[t.key] {
			fresh = append(fresh, t.key)
		}
	}
	for _, t := range streakThresholds {
		if streak >= t.count && !granted[t.key] {
			fresh = append(fresh, t.key)
		}
	}

	for _, key := range fresh {
		if err := e.db.GrantAchievement(userID, key); err != nil {
			return nil, fmt.Errorf("granting %s: %w", key, err)
		}
	}
	return fresh, nil
}

// AwardPoints grants the fixed point value for a reward event kind.
// Unknown event kinds are ignored.
func (e *Engine) AwardPoints(userID, event string) error {
	points, ok := eventPoints[event]
	if !ok {
		return nil
	}
	return e.db.AddPoints(userID, points)
}

// Today returns the current calendar day from the engine's clock.
func (e *Engine) Today() time.Time {
	return e.clock.Now()
}

// Snapshot returns the user's streak, achievements and point balance.
func (e *Engine) Snapshot(userID string) (models.StreakResponse, error) {
	resp := models.StreakResponse{Achievements: []string{}}

	state, err := e.db.GetStreak(userID)
	if err != nil {
		return resp, fmt.Errorf("reading streak: %w", err)
	}
	if state != nil {
		resp.Streak = state.CurrentStreak
		resp.LastActive = state.LastActive
	}

	granted, err := e.db.GetAchievements(userID)
	if err != nil {
		return resp, fmt.Errorf("reading achievements: %w", err)
	}
	for _, t := range entryThresholds {
		if granted[t.key] {
			resp.Achievements = append(resp.Achievements, t.key)
		}
	}
	for _, t := range streakThresholds {
		if granted[t.key] {
			resp.Achievements = append(resp.Achievements, t.key)
		}
	}

	resp.Points, err = e.db.GetPoints(userID)
	if err != nil {
		return resp, fmt.Errorf("reading points: %w", err)
	}
	return resp, nil
}
