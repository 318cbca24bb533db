package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mindwell/reframe-server/internal/api"
	"github.com/mindwell/reframe-server/internal/archive"
	"github.com/mindwell/reframe-server/internal/config"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/journal"
	"github.com/mindwell/reframe-server/internal/remote"
	"github.com/mindwell/reframe-server/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting reframe-server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Create remote store client
	client := remote.NewClient(cfg.RemoteURL, cfg.RemoteKey)

	// Probe the remote at startup; offline is a normal state, not an error
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if client.Online(ctx) {
		log.Printf("Remote store connected: %s", cfg.RemoteURL)
	} else {
		log.Println("WARNING: remote store unreachable, entries will queue locally")
	}
	cancel()

	// Create archive
	archivePath := cfg.ArchivePath
	if archivePath == "" {
		archivePath = "."
	}
	arch := archive.New(archivePath)

	// Create the entry pipeline service
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := journal.New(database, client, client, arch, clockwork.NewRealClock(), rng)

	// Create router
	router := api.NewRouter(cfg, database, svc, client)

	// Create and start scheduler
	sched, err := scheduler.New(database, svc, cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down gracefully...")

	// Give ongoing requests 10 seconds to complete
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Stopping scheduler...")
	if err := sched.Stop(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}

	log.Println("Closing database...")
	if err := database.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Shutdown complete")
}
