package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindwell/reframe-server/internal/config"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/journal"
	"github.com/mindwell/reframe-server/internal/remote"
)

func NewRouter(cfg *config.Config, database *db.DB, svc *journal.Service, probe remote.Probe) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)

	handlers := NewHandlers(cfg, database, svc, probe)
	limiter := NewRateLimiter(60, time.Minute)

	// Public endpoints
	r.Get("/health", handlers.Health)

	// API v1 routes (authenticated)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg))
		r.Use(JSONContentType)
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/entries", handlers.SubmitEntry)
		r.Post("/entries/{id}/action", handlers.EntryAction)
		r.Post("/sync", handlers.Sync)
		r.Get("/pending", handlers.Pending)
		r.Get("/streak", handlers.Streak)
		r.Get("/prompts/inner-child", handlers.InnerChildPrompt)
		r.Get("/preferences", handlers.GetPreferences)
		r.Put("/preferences", handlers.PutPreferences)
	})

	return r
}
