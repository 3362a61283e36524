// Copyright (c) 2026 Commdominium. All rights reserved.

// Command api is the entry point for the Commdominium REST backend.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/commdominium/commdominium/internal/api"
	"github.com/commdominium/commdominium/internal/auth"
	"github.com/commdominium/commdominium/internal/complaint"
	"github.com/commdominium/commdominium/internal/condominium"
	"github.com/commdominium/commdominium/internal/notice"
	"github.com/commdominium/commdominium/internal/noticetype"
	"github.com/commdominium/commdominium/internal/payment"
	"github.com/commdominium/commdominium/internal/platform/config"
	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/platform/migration"
	pgstore "github.com/commdominium/commdominium/internal/platform/postgres"
	redisstore "github.com/commdominium/commdominium/internal/platform/redis"
	"github.com/commdominium/commdominium/internal/user"
	"github.com/commdominium/commdominium/internal/usertype"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "commdominium-api"))
	slog.SetDefault(log)

	log.Info("[Commdominium] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadAPI()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "commdominium-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckSessions: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userTypeRepository := usertype.NewPostgresRepository(pool)
	userTypeService := usertype.NewService(userTypeRepository, log)
	userTypeHandler := usertype.NewHandler(userTypeService)

	userRepository := user.NewPostgresRepository(pool)
	userService := user.NewService(userRepository, log)
	userHandler := user.NewHandler(userService)

	sessionRepository := auth.NewSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, userTypeService)
	authHandler := auth.NewHandler(authService)

	condominiumRepository := condominium.NewPostgresRepository(pool)
	condominiumService := condominium.NewService(condominiumRepository, log)
	condominiumHandler := condominium.NewHandler(condominiumService)

	noticeTypeRepository := noticetype.NewPostgresRepository(pool)
	noticeTypeService := noticetype.NewService(noticeTypeRepository, log)
	noticeTypeHandler := noticetype.NewHandler(noticeTypeService)

	noticeRepository := notice.NewPostgresRepository(pool)
	noticeService := notice.NewService(noticeRepository, log)
	noticeHandler := notice.NewHandler(noticeService)

	complaintRepository := complaint.NewPostgresRepository(pool)
	complaintService := complaint.NewService(complaintRepository, log)
	complaintHandler := complaint.NewHandler(complaintService)

	paymentRepository := payment.NewPostgresRepository(pool)
	paymentService := payment.NewService(paymentRepository, log)
	paymentHandler := payment.NewHandler(paymentService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        authHandler,
		User:        userHandler,
		UserType:    userTypeHandler,
		Condominium: condominiumHandler,
		Notice:      noticeHandler,
		NoticeType:  noticeTypeHandler,
		Complaint:   complaintHandler,
		Payment:     paymentHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
