// Copyright (c) 2026 Commdominium. All rights reserved.

// Command web is the entry point for the Commdominium server-rendered
// frontend.
//
// The frontend owns no storage. Its only upstream is the REST backend,
// reached through the gateway client; sessions live in the backend and are
// referenced here by an opaque cookie token.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/commdominium/commdominium/internal/platform/config"
	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/web"
	"github.com/commdominium/commdominium/internal/web/gateway"
	"github.com/commdominium/commdominium/internal/web/guard"
	"github.com/commdominium/commdominium/internal/web/page"
	"github.com/commdominium/commdominium/internal/web/session"
)

func main() {
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "commdominium-web"))
	slog.SetDefault(log)

	log.Info("[Commdominium] frontend_initializing")

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadWeb()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "commdominium-web"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	// ── Wiring ────────────────────────────────────────────────────────────
	gatewayClient := gateway.NewClient(cfg.APIBaseURL, log)
	tokens := session.TokenStore{Secure: !cfg.IsDevelopment()}
	resolver := session.NewResolver(gatewayClient, log)
	pageGuard := guard.New(resolver, tokens, log)

	renderer, err := page.NewRenderer(log)
	must(log, err, "parse templates")

	pages := page.NewHandlers(renderer, gatewayClient, resolver, tokens, log)
	server := web.NewServer(cfg, log, pageGuard, pages)

	// ── Graceful Shutdown ─────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down frontend", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("frontend stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
