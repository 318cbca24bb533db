package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateEntry(t *testing.T) {
	var got Entry
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/entries" || r.Method != "POST" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "ent_42"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	id, err := client.CreateEntry(context.Background(), Entry{
		UserID: "u1",
		Text:   "feeling fine",
		Mood:   "content",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if id != "ent_42" {
		t.Errorf("got id %q, want ent_42", id)
	}
	if got.UserID != "u1" || got.Text != "feeling fine" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestCreateEntryRejectsMissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.CreateEntry(context.Background(), Entry{UserID: "u1", Text: "x"}); err == nil {
		t.Error("expected an error when the remote returns no id")
	}
}

func TestSetActionCompleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" || r.URL.Path != "/entries/ent_7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if err := client.SetActionCompleted(context.Background(), "u1", "ent_7", true); err != nil {
		t.Fatalf("SetActionCompleted: %v", err)
	}
}

func TestOnline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	client := NewClient(server.URL, "")
	if !client.Online(context.Background()) {
		t.Error("expected online against a healthy server")
	}

	server.Close()
	if client.Online(context.Background()) {
		t.Error("expected offline against a closed server")
	}
}
