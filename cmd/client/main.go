package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/cli"
	"github.com/iudanet/tasksync/internal/client/data"
	"github.com/iudanet/tasksync/internal/client/iocli"
	"github.com/iudanet/tasksync/internal/client/storage/boltdb"
	"github.com/iudanet/tasksync/internal/client/sync"
	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/resilience"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Дефолты тянутся из пакетов, флаги и переменные окружения их
	// переопределяют; флаг имеет приоритет над окружением
	retryDefaults := resilience.DefaultRetryConfig()
	breakerDefaults := resilience.DefaultBreakerConfig()
	syncDefaults := sync.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("TASKSYNC_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOr("TASKSYNC_DB", "tasksync-client.db"), "Path to local database")
	logLevel := flag.String("log-level", envOr("TASKSYNC_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")

	batchSize := flag.Int("batch-size",
		envOrInt("TASKSYNC_BATCH_SIZE", syncDefaults.MaxBatchSize), "Maximum changes per sync batch")
	roundTimeout := flag.Duration("round-timeout",
		envOrDuration("TASKSYNC_ROUND_TIMEOUT", syncDefaults.RoundTimeout), "Timeout for a whole sync round")
	retryAttempts := flag.Uint64("retry-attempts",
		envOrUint("TASKSYNC_RETRY_ATTEMPTS", retryDefaults.MaxAttempts), "Total transport attempts including the first")
	retryBaseDelay := flag.Duration("retry-base-delay",
		envOrDuration("TASKSYNC_RETRY_BASE_DELAY", retryDefaults.BaseDelay), "Initial backoff delay between retries")
	retryMaxDelay := flag.Duration("retry-max-delay",
		envOrDuration("TASKSYNC_RETRY_MAX_DELAY", retryDefaults.MaxDelay), "Backoff delay cap")
	callTimeout := flag.Duration("call-timeout",
		envOrDuration("TASKSYNC_CALL_TIMEOUT", retryDefaults.CallTimeout), "Timeout for a single transport call, 0 disables")
	breakerWindow := flag.Int("breaker-window",
		envOrInt("TASKSYNC_BREAKER_WINDOW", breakerDefaults.WindowSize), "Circuit breaker sliding window size")
	breakerThreshold := flag.Float64("breaker-threshold",
		envOrFloat("TASKSYNC_BREAKER_THRESHOLD", breakerDefaults.FailureThreshold), "Failure ratio that opens the breaker (0..1)")
	breakerReset := flag.Duration("breaker-reset",
		envOrDuration("TASKSYNC_BREAKER_RESET", breakerDefaults.ResetTimeout), "Pause before the breaker allows a trial call")
	clockMaxAge := flag.Duration("clock-max-age",
		envOrDuration("TASKSYNC_CLOCK_MAX_AGE", crdt.DefaultMaxAge), "Vector clocks older than this are rejected")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	// Контекст отменяется по Ctrl+C, что останавливает watch-цикл
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Открываем локальную базу реплики
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем граф сервисов: transport -> resilience -> sync, storage -> data
	apiClient := api.NewClient(*serverURL, *batchSize)
	clocks := crdt.NewClocks(*clockMaxAge, 0)
	resolver := crdt.NewResolver(clocks, crdt.NewPriorityPolicy())
	breaker := resilience.NewBreaker(resilience.BreakerConfig{
		WindowSize:       *breakerWindow,
		FailureThreshold: *breakerThreshold,
		ResetTimeout:     *breakerReset,
	}, logger)
	retrier := resilience.NewRetrier(resilience.RetryConfig{
		MaxAttempts: *retryAttempts,
		BaseDelay:   *retryBaseDelay,
		MaxDelay:    *retryMaxDelay,
		CallTimeout: *callTimeout,
	}, api.IsTransient, logger)

	syncService := sync.NewService(
		apiClient,
		boltStorage,
		boltStorage,
		boltStorage,
		clocks,
		resolver,
		breaker,
		retrier,
		sync.Config{
			MaxBatchSize: *batchSize,
			RoundTimeout: *roundTimeout,
		},
		logger,
	)
	dataService := data.NewService(boltStorage, boltStorage, clocks)

	c := cli.New(iocli.NewStdio(), dataService, syncService)
	c.Run(ctx, command, args[1:])
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

func envOrUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envOrFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printVersion() {
	fmt.Printf("TaskSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
