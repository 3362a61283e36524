// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package web wires the server-rendered frontend into a runnable
[http.Server].

It is the frontend's composition root, mirroring internal/api on the
backend side: the chi router, the shared middleware chain, and the route
table binding each page to its access configuration live here and nowhere
else.
*/
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/commdominium/commdominium/internal/platform/config"
	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/platform/middleware"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/web/guard"
	"github.com/commdominium/commdominium/internal/web/page"
)

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// NewServer builds the frontend route table.
//
// Every content page is wrapped by the access guard with its declared
// allowed-role set. An empty set admits any authenticated account; pages
// absent from a role's navigation are also unreachable directly because
// the guard, not the menu, is the enforcement point.
func NewServer(cfg *config.WebConfig, log *slog.Logger, pageGuard *guard.Guard, pages *page.Handlers) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Authentication
	r.Get("/login", pages.Login)
	r.Post("/login", pages.LoginSubmit)
	r.Post("/logout", pages.Logout)

	// # Pages
	anyRole := []sec.Role(nil)
	staff := []sec.Role{sec.RoleAdmin, sec.RoleAssignee}
	adminOnly := []sec.Role{sec.RoleAdmin}

	r.Get("/", pageGuard.Protect(guard.Page{Key: "home", Allowed: anyRole}, pages.Home))
	r.Get("/avisos", pageGuard.Protect(guard.Page{Key: "notices", Allowed: anyRole}, pages.Notices))
	r.Get("/reclamacoes", pageGuard.Protect(guard.Page{Key: "complaints", Allowed: anyRole}, pages.Complaints))
	r.Get("/meu-perfil", pageGuard.Protect(guard.Page{Key: "profile", Allowed: anyRole}, pages.Profile))

	r.Get("/financeiro", pageGuard.Protect(guard.Page{Key: "payments", Allowed: staff}, pages.Payments))
	r.Get("/moradores", pageGuard.Protect(guard.Page{Key: "residents", Allowed: staff}, pages.Residents))

	r.Get("/condominios", pageGuard.Protect(guard.Page{Key: "condominiums", Allowed: adminOnly}, pages.Condominiums))
	r.Get("/usuarios", pageGuard.Protect(guard.Page{Key: "users", Allowed: adminOnly}, pages.Users))

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

// ListenAndServe starts the HTTP server. It blocks until the server is
// closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("frontend starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
