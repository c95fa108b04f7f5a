package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/db"
	"github.com/elfaka/site/googleforms"
	"github.com/elfaka/site/lostark"
	"github.com/elfaka/site/middleware"
	"github.com/elfaka/site/router"
)

// sessionSweepInterval is how often expired sessions are purged.
const sessionSweepInterval = time.Hour

func main() {
	var err error

	// .env is optional; real environment variables win
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(middleware.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	upstreamClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	clients := router.Clients{
		Forms: googleforms.New(googleforms.Options{
			FormsBaseURL: cfg.GoogleFormsBaseURL,
			DriveBaseURL: cfg.GoogleDriveBaseURL,
			HTTPClient:   upstreamClient,
		}),
		LostArk: lostark.New(lostark.Options{
			BaseURL:    cfg.LostArkBaseURL,
			APIKey:     cfg.LostArkAPIKey,
			HTTPClient: upstreamClient,
		}),
	}
	if cfg.LostArkAPIKey == "" {
		slog.Warn("LOSTARK_API_KEY is not set; character lookups will fail")
	}
	if cfg.SessionHookSecret == "" {
		slog.Warn("SESSION_HOOK_SECRET is not set; anyone can create sessions")
	}

	go sweepSessions(ctx, auth.NewStore(dbConn, cfg.DatabaseType))

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(dbConn, cfg, clients),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "static_dir", cfg.StaticDir)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// sweepSessions deletes expired sessions until ctx is done.
func sweepSessions(ctx context.Context, store *auth.Store) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.DeleteExpired(ctx)
			if err != nil {
				slog.Error("failed to delete expired sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions deleted", "count", n)
			}
		}
	}
}
