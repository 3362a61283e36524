// Copyright (c) 2026 Commdominium. All rights reserved.

// Authentication and authorization middleware.
//
// # Architecture
//
// The session credential is an opaque bearer token. Authenticate resolves it
// through the [Introspector] (Redis lookup plus a user fetch) and
// attaches the resulting [sec.Identity] to the request context. RequireAuth
// and RequireRoles then gate individual route groups.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/ctxutil"
	"github.com/commdominium/commdominium/internal/platform/respond"
	"github.com/commdominium/commdominium/internal/platform/sec"
)

// Introspector resolves an opaque session token to the identity behind it.
//
// # Why an interface?
//
// Defining Introspector here decouples the middleware from the auth service
// implementation, allowing mocks during unit testing.
type Introspector interface {
	Introspect(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts and resolves the bearer token from the Authorization
// header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, introspect the opaque token via [Introspector].
//  4. Inject [*sec.Identity] into the request context for downstream use.
func Authenticate(introspector Introspector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Introspection ────────────────────────────────────────
			identity, err := introspector.Introspect(request.Context(), parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRoles blocks requests unless the authenticated identity's role is a
// member of the allowed set. It implies [RequireAuth].
//
// Absence of a role match never grants access.
func RequireRoles(allowed ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !identity.Role.OneOf(allowed...) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
