package db

import (
	"database/sql"
	"time"
)

// StreakRow is the streak state for one user.
type StreakRow struct {
	UserID        string
	CurrentStreak int
	LastActive    string // YYYY-MM-DD, empty if never active
}

// GetStreak returns the streak row for a user, or nil if none exists.
func (db *DB) GetStreak(userID string) (*StreakRow, error) {
	var s StreakRow
	var lastActive sql.NullString
	err := db.conn.QueryRow(`
		SELECT user_id, current_streak, last_active FROM streaks WHERE user_id = ?
	`, userID).Scan(&s.UserID, &s.CurrentStreak, &lastActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.LastActive = lastActive.String
	return &s, nil
}

// UpsertStreak writes the streak state for a user.
func (db *DB) UpsertStreak(userID string, streak int, lastActive string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(`
		INSERT INTO streaks (user_id, current_streak, last_active, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			current_streak = ?,
			last_active = ?,
			updated_at = ?
	`, userID, streak, lastActive, now, streak, lastActive, now)
	return err
}

// GetAchievements returns the set of granted achievement keys for a user.
func (db *DB) GetAchievements(userID string) (map[string]bool, error) {
	rows, err := db.conn.Query(`SELECT achievement_key FROM achievements WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	granted := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		granted[key] = true
	}
	return granted, rows.Err()
}

// GrantAchievement records an achievement grant. Granting the same key
// twice is a no-op, which makes crash-retry safe.
func (db *DB) GrantAchievement(userID, key string) error {
	_, err := db.conn.Exec(`
		INSERT OR IGNORE INTO achievements (user_id, achievement_key, granted_at)
		VALUES (?, ?, ?)
	`, userID, key, time.Now().UTC().Format(time.RFC3339))
	return err
}

// AddPoints adds reward points to a user's balance.
func (db *DB) AddPoints(userID string, points int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(`
		INSERT INTO reward_points (user_id, points, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			points = points + ?,
			updated_at = ?
	`, userID, points, now, points, now)
	return err
}

// GetPoints returns the point balance for a user.
func (db *DB) GetPoints(userID string) (int, error) {
	var points int
	err := db.conn.QueryRow(`SELECT points FROM reward_points WHERE user_id = ?`, userID).Scan(&points)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return points, err
}

// PreferencesRow is the preference row for one user.
type PreferencesRow struct {
	FaithEnabled   bool
	FaithTradition string
	InnerChildMode bool
}

// GetPreferences returns the preference row for a user; missing rows come
// back as the zero value.
func (db *DB) GetPreferences(userID string) (PreferencesRow, error) {
	var p PreferencesRow
	var faithEnabled, innerChild int
	var tradition sql.NullString
	err := db.conn.QueryRow(`
		SELECT faith_enabled, faith_tradition, inner_child_mode
		FROM user_preferences WHERE user_id = ?
	`, userID).Scan(&faithEnabled, &tradition, &innerChild)
	if err == sql.ErrNoRows {
		return PreferencesRow{}, nil
	}
	if err != nil {
		return PreferencesRow{}, err
	}
	p.FaithEnabled = faithEnabled == 1
	p.FaithTradition = tradition.String
	p.InnerChildMode = innerChild == 1
	return p, nil
}

// UpsertPreferences writes the preference row for a user.
func (db *DB) UpsertPreferences(userID string, p PreferencesRow) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(`
		INSERT INTO user_preferences (user_id, faith_enabled, faith_tradition, inner_child_mode, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			faith_enabled = ?,
			faith_tradition = ?,
			inner_child_mode = ?,
			updated_at = ?
	`, userID, boolToInt(p.FaithEnabled), p.FaithTradition, boolToInt(p.InnerChildMode), now,
		boolToInt(p.FaithEnabled), p.FaithTradition, boolToInt(p.InnerChildMode), now)
	return err
}
