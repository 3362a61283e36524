// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package session owns the browser-facing half of authentication: the cookie
that carries the opaque bearer token, and the resolver that exchanges
credentials or a stored token for the current account.

The token is never inspected or decoded here. It is an opaque credential
minted by the backend; the only party that can interpret it is the backend
itself via its introspection endpoint.
*/
package session

import (
	"net/http"
	"time"

	"github.com/commdominium/commdominium/internal/platform/constants"
)

// TokenStore reads and writes the session cookie.
//
// It is a pure storage shim: reads never fail, absence is an ordinary
// state (anonymous visitor), and Clear is idempotent.
type TokenStore struct {
	// Secure marks the cookie HTTPS-only. Off in development.
	Secure bool
}

// Read returns the stored token for the request, or false when the visitor
// is anonymous.
func (store TokenStore) Read(request *http.Request) (string, bool) {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Write persists the token with the given lifetime.
func (store TokenStore) Write(writer http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   store.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the cookie. Calling it twice is harmless.
func (store TokenStore) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   store.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
