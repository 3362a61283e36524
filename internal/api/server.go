// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package, internal/web and the cmd binaries are allowed to
    import net/http server primitives.

The route table keeps the legacy REST contract: flat resource prefixes
(/user, /condominium, ...), verb-named operations (findAll, findById,
register, update, delete), and the cross-cutting /services group.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/commdominium/commdominium/internal/auth"
	"github.com/commdominium/commdominium/internal/complaint"
	"github.com/commdominium/commdominium/internal/condominium"
	"github.com/commdominium/commdominium/internal/notice"
	"github.com/commdominium/commdominium/internal/noticetype"
	"github.com/commdominium/commdominium/internal/payment"
	"github.com/commdominium/commdominium/internal/platform/config"
	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/platform/middleware"
	"github.com/commdominium/commdominium/internal/user"
	"github.com/commdominium/commdominium/internal/usertype"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, logout and the token introspection endpoint.
	Auth *auth.Handler

	// User handles accounts and the active-status toggle.
	User *user.Handler

	// UserType serves the role catalog.
	UserType *usertype.Handler

	// Condominium manages buildings.
	Condominium *condominium.Handler

	// Notice handles the bulletin board.
	Notice *notice.Handler

	// NoticeType serves the notice category catalog.
	NoticeType *noticetype.Handler

	// Complaint handles the resident complaint box.
	Complaint *complaint.Handler

	// Payment handles billing.
	Payment *payment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.APIConfig, log *slog.Logger, introspector middleware.Introspector, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(introspector))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// The legacy contract mounts everything at the root, not under a
	// versioned prefix.
	r.Mount("/auth", h.Auth.Routes())
	r.Get("/queryToken", h.Auth.QueryTokenHandler)

	r.Mount("/user", h.User.Routes())
	r.Mount("/userType", h.UserType.Routes())
	r.Mount("/condominium", h.Condominium.Routes())
	r.Mount("/notices", h.Notice.Routes())
	r.Mount("/noticeType", h.NoticeType.Routes())
	r.Mount("/complaint", h.Complaint.Routes())
	r.Mount("/payment", h.Payment.Routes())

	// # Cross-Cutting Services
	// The legacy API groups status flips and aggregate reads under /services.
	r.Route("/services", func(services chi.Router) {
		h.User.ServiceRoutes(services)
		h.Notice.ServiceRoutes(services)
		h.Complaint.ServiceRoutes(services)
		h.Payment.ServiceRoutes(services)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
