package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/reframe-server/internal/config"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/journal"
	"github.com/mindwell/reframe-server/internal/models"
	"github.com/mindwell/reframe-server/internal/remote"
)

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	})
}

type Handlers struct {
	cfg     *config.Config
	db      *db.DB
	svc     *journal.Service
	probe   remote.Probe
	version string
}

func NewHandlers(cfg *config.Config, database *db.DB, svc *journal.Service, probe remote.Probe) *Handlers {
	return &Handlers{
		cfg:     cfg,
		db:      database,
		svc:     svc,
		probe:   probe,
		version: "1.0.0",
	}
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  "ok",
		Store:   h.checkStore(),
		Remote:  h.checkRemote(r.Context()),
		Version: h.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) checkStore() string {
	if err := h.db.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func (h *Handlers) checkRemote(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if !h.probe.Online(ctx) {
		return "offline"
	}
	return "connected"
}

// SubmitEntry handles POST /api/v1/entries
func (h *Handlers) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required", "MISSING_TEXT")
		return
	}

	resp, err := h.svc.Submit(r.Context(), GetUser(r), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "processing entry failed", "PROCESSING_FAILED")
		return
	}

	status := http.StatusCreated
	if resp.Offline {
		// Queued locally, not yet committed upstream
		status = http.StatusAccepted
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// Sync handles POST /api/v1/sync
func (h *Handlers) Sync(w http.ResponseWriter, r *http.Request) {
	committed, remaining, err := h.svc.Flush(r.Context(), GetUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sync failed", "SYNC_FAILED")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SyncResponse{
		Committed: committed,
		Remaining: remaining,
	})
}

// Pending handles GET /api/v1/pending
func (h *Handlers) Pending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Pending(GetUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing pending entries failed", "PENDING_FAILED")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// EntryAction handles POST /api/v1/entries/{id}/action
func (h *Handlers) EntryAction(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		writeError(w, http.StatusBadRequest, "entry id is required", "MISSING_ID")
		return
	}

	var req models.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if err := h.svc.CompleteAction(r.Context(), GetUser(r), entryID, req.Completed); err != nil {
		writeError(w, http.StatusInternalServerError, "updating action failed", "ACTION_FAILED")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"completed": req.Completed})
}

// Streak handles GET /api/v1/streak
func (h *Handlers) Streak(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Streak(GetUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading streak failed", "STREAK_FAILED")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// InnerChildPrompt handles GET /api/v1/prompts/inner-child
func (h *Handlers) InnerChildPrompt(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.svc.InnerChildPrompt())
}

// GetPreferences handles GET /api/v1/preferences
func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Preferences(GetUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading preferences failed", "PREFERENCES_FAILED")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(prefs)
}

// PutPreferences handles PUT /api/v1/preferences
func (h *Handlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if err := h.svc.SetPreferences(GetUser(r), prefs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_PREFERENCES")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(prefs)
}
