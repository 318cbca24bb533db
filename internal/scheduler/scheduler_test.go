package scheduler

import (
	"os"
	"testing"
	"time"

	"github.com/mindwell/reframe-server/internal/db"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "scheduler-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	database, err := db.Open(tmpFile.Name())
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestNewFallsBackToUTC(t *testing.T) {
	database := setupTestDB(t)

	s, err := New(database, nil, "Not/AZone")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.timezone != time.UTC {
		t.Errorf("expected UTC fallback, got %v", s.timezone)
	}
}

func TestNewWithTimezone(t *testing.T) {
	database := setupTestDB(t)

	s, err := New(database, nil, "Europe/London")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.timezone.String() != "Europe/London" {
		t.Errorf("expected Europe/London, got %v", s.timezone)
	}
}

func TestPruneDistress(t *testing.T) {
	database := setupTestDB(t)

	old := time.Now().AddDate(0, 0, -(distressRetentionDays + 10))
	if err := database.SaveDistress(db.DistressRow{
		UserID:    "alice",
		EntryID:   "e1",
		Level:     "low",
		CreatedAt: old,
	}); err != nil {
		t.Fatalf("SaveDistress failed: %v", err)
	}
	if err := database.SaveDistress(db.DistressRow{
		UserID:    "alice",
		EntryID:   "e2",
		Level:     "low",
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("SaveDistress failed: %v", err)
	}

	s, err := New(database, nil, "UTC")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s.pruneDistress()

	levels, err := database.RecentDistressLevels("alice", 10)
	if err != nil {
		t.Fatalf("RecentDistressLevels failed: %v", err)
	}
	if len(levels) != 1 {
		t.Errorf("expected only the recent row to survive, got %d", len(levels))
	}
}
