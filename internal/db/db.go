// Package db is the engine's durable local store: the offline entry queue,
// the entry log used for history lookups, distress tracking, recommendation
// events, streaks, achievements and reward points.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
-- Offline write queue, FIFO by rowid
CREATE TABLE IF NOT EXISTS pending_entries (
    local_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    raw_text TEXT NOT NULL,
    mood TEXT,
    tags TEXT,
    chapter_id TEXT,
    inner_child INTEGER NOT NULL DEFAULT 0,
    reframe TEXT,
    action_text TEXT,
    created_at TEXT NOT NULL
);

-- Local mirror of accepted entries, for recent-history lookups
CREATE TABLE IF NOT EXISTS entry_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_id TEXT UNIQUE NOT NULL,
    user_id TEXT NOT NULL,
    mood TEXT,
    raw_text TEXT NOT NULL,
    inner_child INTEGER NOT NULL DEFAULT 0,
    action_completed INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);

-- Distress assessment per entry
CREATE TABLE IF NOT EXISTS distress_tracking (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    entry_id TEXT NOT NULL,
    level TEXT NOT NULL,
    triggers TEXT,
    recommendation_shown INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);

-- Therapist recommendation events
CREATE TABLE IF NOT EXISTS therapist_recommendations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    shown_at TEXT NOT NULL
);

-- Streak state per user
CREATE TABLE IF NOT EXISTS streaks (
    user_id TEXT PRIMARY KEY,
    current_streak INTEGER NOT NULL DEFAULT 0,
    last_active TEXT,
    updated_at TEXT NOT NULL
);

-- Achievement grants, at most once per (user, key)
CREATE TABLE IF NOT EXISTS achievements (
    user_id TEXT NOT NULL,
    achievement_key TEXT NOT NULL,
    granted_at TEXT NOT NULL,
    PRIMARY KEY (user_id, achievement_key)
);

-- Reward point balance per user
CREATE TABLE IF NOT EXISTS reward_points (
    user_id TEXT PRIMARY KEY,
    points INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);

-- Per-user preference row
CREATE TABLE IF NOT EXISTS user_preferences (
    user_id TEXT PRIMARY KEY,
    faith_enabled INTEGER NOT NULL DEFAULT 0,
    faith_tradition TEXT,
    inner_child_mode INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pending_user ON pending_entries(user_id);
CREATE INDEX IF NOT EXISTS idx_entry_log_user ON entry_log(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_distress_user ON distress_tracking(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_recommendations_user ON therapist_recommendations(user_id, shown_at DESC);
`

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping reports whether the store is reachable.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// PendingEntry is one queued offline entry.
type PendingEntry struct {
	LocalID    string
	UserID     string
	RawText    string
	Mood       string
	Tags       string // JSON array
	ChapterID  string
	InnerChild bool
	Reframe    string
	ActionText string
	CreatedAt  time.Time
}

// AddPendingEntry appends an entry to the offline queue.
func (db *DB) AddPendingEntry(p PendingEntry) error {
	_, err := db.conn.Exec(`
		INSERT INTO pending_entries (local_id, user_id, raw_text, mood, tags, chapter_id, inner_child, reframe, action_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.LocalID, p.UserID, p.RawText, p.Mood, p.Tags, p.ChapterID, boolToInt(p.InnerChild), p.Reframe, p.ActionText,
		p.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// GetPendingEntries returns the queue for a user in enqueue (FIFO) order.
func (db *DB) GetPendingEntries(userID string) ([]PendingEntry, error) {
	rows, err := db.conn.Query(`
		SELECT local_id, user_id, raw_text, mood, tags, chapter_id, inner_child, reframe, action_text, created_at
		FROM pending_entries
		WHERE user_id = ?
		ORDER BY rowid ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []PendingEntry
	for rows.Next() {
		var p PendingEntry
		var mood, tags, chapterID, reframe, actionText sql.NullString
		var innerChild int
		var createdStr string
		if err := rows.Scan(&p.LocalID, &p.UserID, &p.RawText, &mood, &tags, &chapterID, &innerChild, &reframe, &actionText, &createdStr); err != nil {
			return nil, err
		}
		p.Mood = mood.String
		p.Tags = tags.String
		p.ChapterID = chapterID.String
		p.InnerChild = innerChild == 1
		p.Reframe = reframe.String
		p.ActionText = actionText.String
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

// CountPendingEntries returns the queue depth for a user.
func (db *DB) CountPendingEntries(userID string) (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM pending_entries WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// UsersWithPending returns all user ids that have queued entries.
func (db *DB) UsersWithPending() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT user_id FROM pending_entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// RemovePendingEntry deletes a queued entry after confirmed remote
// acceptance. This is the only path that drops a queued record.
func (db *DB) RemovePendingEntry(localID string) error {
	_, err := db.conn.Exec(`DELETE FROM pending_entries WHERE local_id = ?`, localID)
	return err
}

// EntryRecord is one row of the local entry mirror.
type EntryRecord struct {
	EntryID         string
	UserID          string
	Mood            string
	RawText         string
	InnerChild      bool
	ActionCompleted bool
	CreatedAt       time.Time
}

// LogEntry mirrors an accepted entry locally for history lookups.
func (db *DB) LogEntry(e EntryRecord) error {
	_, err := db.conn.Exec(`
		INSERT OR IGNORE INTO entry_log (entry_id, user_id, mood, raw_text, inner_child, action_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.EntryID, e.UserID, e.Mood, e.RawText, boolToInt(e.InnerChild), boolToInt(e.ActionCompleted),
		e.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// RecentEntries returns the newest entries for a user, newest first.
func (db *DB) RecentEntries(userID string, limit int) ([]EntryRecord, error) {
	rows, err := db.conn.Query(`
		SELECT entry_id, user_id, mood, raw_text, inner_child, action_completed, created_at
		FROM entry_log
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []EntryRecord
	for rows.Next() {
		var e EntryRecord
		var mood sql.NullString
		var innerChild, actionCompleted int
		var createdStr string
		if err := rows.Scan(&e.EntryID, &e.UserID, &mood, &e.RawText, &innerChild, &actionCompleted, &createdStr); err != nil {
			return nil, err
		}
		e.Mood = mood.String
		e.InnerChild = innerChild == 1
		e.ActionCompleted = actionCompleted == 1
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountEntries returns the lifetime entry count for a user.
func (db *DB) CountEntries(userID string) (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM entry_log WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// SetActionCompleted flips the action flag on a mirrored entry. The
// update is scoped to the owning user; a miss reports an error so callers
// cannot touch another user's entries.
func (db *DB) SetActionCompleted(userID, entryID string, completed bool) error {
	res, err := db.conn.Exec(`
		UPDATE entry_log SET action_completed = ?
		WHERE entry_id = ? AND user_id = ?
	`, boolToInt(completed), entryID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry %s not found for user %s", entryID, userID)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
