package db

import (
	"database/sql"
	"time"
)

// DistressRow is one persisted distress assessment.
type DistressRow struct {
	UserID              string
	EntryID             string
	Level               string
	Triggers            string // JSON array
	RecommendationShown bool
	CreatedAt           time.Time
}

// SaveDistress records a distress assessment for an entry.
func (db *DB) SaveDistress(d DistressRow) error {
	_, err := db.conn.Exec(`
		INSERT INTO distress_tracking (user_id, entry_id, level, triggers, recommendation_shown, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.UserID, d.EntryID, d.Level, d.Triggers, boolToInt(d.RecommendationShown),
		d.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// RecentDistressLevels returns the newest distress levels for a user,
// newest first.
func (db *DB) RecentDistressLevels(userID string, limit int) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT level FROM distress_tracking
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// PruneDistressBefore deletes distress rows older than the cutoff and
// returns how many were removed.
func (db *DB) PruneDistressBefore(cutoff time.Time) (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM distress_tracking WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SaveRecommendation records a shown therapist recommendation.
func (db *DB) SaveRecommendation(userID, category string, shownAt time.Time) error {
	_, err := db.conn.Exec(`
		INSERT INTO therapist_recommendations (user_id, category, shown_at)
		VALUES (?, ?, ?)
	`, userID, category, shownAt.UTC().Format(time.RFC3339))
	return err
}

// RecommendationRow is one shown-recommendation event.
type RecommendationRow struct {
	Category string
	ShownAt  time.Time
}

// LastRecommendation returns the most recently shown recommendation for
// the user, or nil if never.
func (db *DB) LastRecommendation(userID string) (*RecommendationRow, error) {
	var r RecommendationRow
	var shownStr string
	err := db.conn.QueryRow(`
		SELECT category, shown_at FROM therapist_recommendations
		WHERE user_id = ?
		ORDER BY shown_at DESC
		LIMIT 1
	`, userID).Scan(&r.Category, &shownStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.ShownAt, err = time.Parse(time.RFC3339, shownStr)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
