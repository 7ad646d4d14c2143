package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/server/handlers"
	"github.com/iudanet/tasksync/internal/server/middleware"
	"github.com/iudanet/tasksync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// config собирает настройки сервера из флагов и переменных окружения
type config struct {
	addr        string
	dbPath      string
	initRate    int
	syncRate    int
	defaultRate int
	rateWindow  time.Duration
	clockMaxAge time.Duration
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("TASKSYNC_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("TASKSYNC_DB", "tasksync-server.db"), "Path to SQLite database")
	logLevel := flag.String("log-level", envOr("TASKSYNC_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	initRate := flag.Int("init-rate",
		envOrInt("TASKSYNC_INIT_RATE", 10), "Initialize requests allowed per node per window")
	syncRate := flag.Int("sync-rate",
		envOrInt("TASKSYNC_SYNC_RATE", 60), "Synchronize requests allowed per node per window")
	defaultRate := flag.Int("default-rate",
		envOrInt("TASKSYNC_DEFAULT_RATE", 120), "Requests allowed per node per window on other paths")
	rateWindow := flag.Duration("rate-window",
		envOrDuration("TASKSYNC_RATE_WINDOW", time.Minute), "Rate limit window")
	clockMaxAge := flag.Duration("clock-max-age",
		envOrDuration("TASKSYNC_CLOCK_MAX_AGE", crdt.DefaultMaxAge), "Vector clocks older than this are rejected")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	cfg := config{
		addr:        *addr,
		dbPath:      *dbPath,
		initRate:    *initRate,
		syncRate:    *syncRate,
		defaultRate: *defaultRate,
		rateWindow:  *rateWindow,
		clockMaxAge: *clockMaxAge,
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Открываем хранилище и применяем миграции
	store, err := sqlite.New(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	clocks := crdt.NewClocks(cfg.clockMaxAge, 0)
	resolver := crdt.NewResolver(clocks, crdt.NewPriorityPolicy())

	syncHandler := handlers.NewSyncHandler(logger, store, store, store, clocks, resolver)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sync/initialize", syncHandler.HandleInitialize)
	mux.HandleFunc("POST /api/v1/sync/synchronize", syncHandler.HandleSynchronize)
	mux.HandleFunc("GET /api/v1/sync/state/{nodeId}", syncHandler.HandleGetState)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Sync-раунды дороже health-проверок, поэтому лимиты по путям
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/sync/initialize", Rate: cfg.initRate, Window: cfg.rateWindow},
		{Path: "/api/v1/sync/synchronize", Rate: cfg.syncRate, Window: cfg.rateWindow},
	}

	handler := middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
		middleware.RecoveryMiddleware(logger)(
			middleware.RateLimitByPathMiddleware(rateLimits, cfg.defaultRate, cfg.rateWindow, logger)(
				middleware.NoCacheMiddleware(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         cfg.addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("TaskSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
