package archive

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestAppendAndReadBack(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)

	rec := NewRecord("entry-1", "user-1", "anxious")
	rec.Queued = true
	rec.Distress = "moderate"
	if err := a.Append(rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	rec2 := NewRecord("entry-2", "user-1", "happy")
	if err := a.Append(rec2); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "entries.jsonl"))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer f.Close()

	var got []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("unmarshaling line: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "entry-1" || !got[0].Queued || got[0].Distress != "moderate" {
		t.Errorf("first record mismatch: %+v", got[0])
	}
	if got[1].ID != "entry-2" || got[1].Mood != "happy" {
		t.Errorf("second record mismatch: %+v", got[1])
	}
	if got[0].TS == "" {
		t.Error("expected timestamp to be populated")
	}
}
