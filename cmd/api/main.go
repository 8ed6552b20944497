// Command api serves the versioned résumé store over HTTP.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-studio/internal/config"
	"resume-studio/internal/http"
	"resume-studio/internal/llm"
	"resume-studio/internal/render"
	"resume-studio/internal/service"
	"resume-studio/internal/storage"
	"resume-studio/internal/store"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the résumé document, migrating legacy payloads
	documentRepo := storage.NewDocumentRepo(storage.NewSlotRepo(db))
	resumeStore, err := store.Open(ctx, documentRepo, store.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to load resume document: %v", err)
	}
	slog.Info("Resume store loaded",
		"versions", len(resumeStore.Versions()),
		"current_version", resumeStore.CurrentVersionID())

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	if cfg.LLMAPIKey == "" {
		slog.Warn("LLM_API_KEY is not set; upload parsing and improvements may fail")
	}

	deps := &http.Deps{
		Store:              resumeStore,
		DB:                 db,
		ParseService:       service.NewParseService(llmClient),
		ImprovementService: service.NewImprovementService(llmClient, cfg.ImproveConcurrency),
		Markdown:           render.NewMarkdownGenerator(),
		HTML:               render.NewHTMLRenderer(),
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "improve_concurrency", cfg.ImproveConcurrency)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
