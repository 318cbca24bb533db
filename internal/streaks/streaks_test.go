package streaks

import (
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/models"
)

func setupEngine(t *testing.T) (*Engine, *db.DB, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "streaks-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	tmpFile.Close()

	database, err := db.Open(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("opening database: %v", err)
	}

	clock := clockwork.NewFakeClockAt(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	engine := New(database, clock)

	cleanup := func() {
		database.Close()
		os.Remove(tmpFile.Name())
	}
	return engine, database, cleanup
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestRecordActivityIncrement(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	if err := engine.RecordActivity("u1", day(2026, 8, 31)); err != nil {
		t.Fatalf("recording: %v", err)
	}
	if err := engine.RecordActivity("u1", day(2026, 9, 1)); err != nil {
		t.Fatalf("recording: %v", err)
	}

	state, _ := database.GetStreak("u1")
	if state.CurrentStreak != 2 {
		t.Errorf("got streak %d, want 2 after consecutive days", state.CurrentStreak)
	}
	if state.LastActive != "2026-09-01" {
		t.Errorf("got last_active %s, want 2026-09-01", state.LastActive)
	}
}

func TestRecordActivitySameDayNoOp(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	engine.RecordActivity("u1", day(2026, 9, 1))
	engine.RecordActivity("u1", day(2026, 9, 1))

	state, _ := database.GetStreak("u1")
	if state.CurrentStreak != 1 {
		t.Errorf("got streak %d, want 1 (same-day is a no-op)", state.CurrentStreak)
	}
}

func TestRecordActivityResetAfterGap(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	engine.RecordActivity("u1", day(2026, 8, 25))
	engine.RecordActivity("u1", day(2026, 8, 26))
	engine.RecordActivity("u1", day(2026, 8, 29)) // 3-day gap

	state, _ := database.GetStreak("u1")
	if state.CurrentStreak != 1 {
		t.Errorf("got streak %d, want reset to 1 after a gap", state.CurrentStreak)
	}
}

func TestEvaluateAchievementsGrantsAndIdempotence(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	database.LogEntry(db.EntryRecord{EntryID: "e1", UserID: "u1", RawText: "x", CreatedAt: time.Now()})
	engine.RecordActivity("u1", day(2026, 9, 1))

	fresh, err := engine.EvaluateAchievements("u1")
	if err != nil {
		t.Fatalf("evaluating: %v", err)
	}
	if len(fresh) != 1 || fresh[0] != KeyFirstEntry {
		t.Errorf("got %v, want [first_entry]", fresh)
	}

	// Without new qualifying activity the second call returns nothing.
	fresh, err = engine.EvaluateAchievements("u1")
	if err != nil {
		t.Fatalf("re-evaluating: %v", err)
	}
	if len(fresh) != 0 {
		t.Errorf("second evaluation granted %v, want none", fresh)
	}
}

func TestEvaluateAchievementsStreakThresholds(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		engine.RecordActivity("u1", day(2026, 8, 29+i))
	}
	state, _ := database.GetStreak("u1")
	if state.CurrentStreak != 3 {
		t.Fatalf("setup: streak %d, want 3", state.CurrentStreak)
	}

	fresh, err := engine.EvaluateAchievements("u1")
	if err != nil {
		t.Fatalf("evaluating: %v", err)
	}
	found := false
	for _, key := range fresh {
		if key == KeyThreeDayStreak {
			found = true
		}
	}
	if !found {
		t.Errorf("three_day_streak not granted: %v", fresh)
	}
}

func TestAwardPoints(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	engine.AwardPoints("u1", models.EventJournalEntry)
	engine.AwardPoints("u1", models.EventActionCompleted)
	engine.AwardPoints("u1", "not_an_event")

	points, _ := database.GetPoints("u1")
	if points != 30 {
		t.Errorf("got %d points, want 30", points)
	}
}

func TestSnapshot(t *testing.T) {
	engine, database, cleanup := setupEngine(t)
	defer cleanup()

	database.LogEntry(db.EntryRecord{EntryID: "e1", UserID: "u1", RawText: "x", CreatedAt: time.Now()})
	engine.RecordActivity("u1", day(2026, 9, 1))
	engine.EvaluateAchievements("u1")
	engine.AwardPoints("u1", models.EventJournalEntry)

	snap, err := engine.Snapshot("u1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Streak != 1 || snap.LastActive != "2026-09-01" {
		t.Errorf("unexpected streak state: %+v", snap)
	}
	if len(snap.Achievements) != 1 || snap.Achievements[0] != KeyFirstEntry {
		t.Errorf("unexpected achievements: %v", snap.Achievements)
	}
	if snap.Points != 10 {
		t.Errorf("got %d points, want 10", snap.Points)
	}
}
