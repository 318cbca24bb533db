// Package remote talks to the upstream entry store. The engine treats it
// as a black box: create/update of entry rows plus a reachability probe
// that doubles as the connectivity signal.
package remote

import (
	"context"
	"time"
)

// Entry is the wire shape of a journal entry row.
type Entry struct {
	ID              string   `json:"id,omitempty"`
	UserID          string   `json:"user_id"`
	Text            string   `json:"text_entry"`
	Mood            string   `json:"mood,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ChapterID       string   `json:"chapter_id,omitempty"`
	InitialReframe  string   `json:"initial_reframe,omitempty"`
	ActionText      string   `json:"action_text,omitempty"`
	ActionCompleted bool     `json:"action_completed"`
	IsInnerChild    bool     `json:"is_inner_child_mode"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// Store is the remote persistence surface the engine depends on.
type Store interface {
	// CreateEntry persists an entry and returns the server-assigned id.
	CreateEntry(ctx context.Context, e Entry) (string, error)
	// SetActionCompleted flips the action flag on a persisted entry.
	SetActionCompleted(ctx context.Context, userID, entryID string, completed bool) error
}

// Probe reports current connectivity to the remote store.
type Probe interface {
	Online(ctx context.Context) bool
}

// probeTimeout bounds the connectivity check so an unreachable remote
// cannot stall a submission.
const probeTimeout = 2 * time.Second
