// Package archive keeps a local append-only audit log of processed entries.
// One JSON object per line; writes are best-effort from the service's point
// of view but retried internally.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one processed-entry line in the archive.
type Record struct {
	ID          string `json:"id"`
	TS          string `json:"ts"`
	UserID      string `json:"user_id"`
	Mood        string `json:"mood"`
	InnerChild  bool   `json:"inner_child,omitempty"`
	Queued      bool   `json:"queued,omitempty"`
	Distress    string `json:"distress,omitempty"`
	Recommended bool   `json:"recommended,omitempty"`
}

// Archive appends records to a JSONL file under basePath.
type Archive struct {
	basePath string
	mu       sync.Mutex
}

func New(basePath string) *Archive {
	return &Archive{basePath: basePath}
}

// NewRecord creates a record with the timestamp populated.
func NewRecord(id, userID, mood string) Record {
	return Record{
		ID:     id,
		TS:     time.Now().UTC().Format(time.RFC3339),
		UserID: userID,
		Mood:   mood,
	}
}

// Append writes one record to entries.jsonl.
// Uses a mutex to prevent interleaved writes from concurrent requests.
func (a *Archive) Append(rec Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	path := filepath.Join(a.basePath, "entries.jsonl")

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling archive record: %w", err)
	}

	if err := appendLine(path, line); err != nil {
		return fmt.Errorf("appending archive record: %w", err)
	}
	return nil
}

// appendLine appends a line to a file, creating it if needed.
// Retries up to 3 attempts with backoff.
func appendLine(path string, line []byte) error {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(100*(1<<uint(attempt-1))) * time.Millisecond)
		}
		if err := appendLineOnce(path, line); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("after 3 attempts: %w", lastErr)
}

func appendLineOnce(path string, line []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()

	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing file: %w", err)
	}

	return nil
}
