// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package guard enforces page access before any page data is fetched.

For every protected page the check runs in a fixed order: read the token
from the cookie, recover the account behind it, then match the account's
role against the page's allowed set. Any miss redirects to /login and
short-circuits; the wrapped page handler, and therefore its data fetching,
never runs. Access is deny-by-default: a role grants a page only when the
page explicitly lists it.
*/
package guard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/web/session"
)

// LoginPath is where every failed check lands.
const LoginPath = "/login"

// Page is the typed access configuration a page declares once.
type Page struct {
	// Key identifies the page in logs and nav highlighting.
	Key string

	// Allowed is the closed set of roles that may open the page. An empty
	// set means any authenticated account.
	Allowed []sec.Role
}

// HandlerFunc is a page handler that runs only after the guard passes.
type HandlerFunc func(writer http.ResponseWriter, request *http.Request, account *session.Account)

// AccountResolver is the slice of the session resolver the guard needs.
type AccountResolver interface {
	RecoverUser(ctx context.Context, token string) (*session.Account, error)
}

// Guard wraps page handlers with the access check.
type Guard struct {
	resolver AccountResolver
	tokens   session.TokenStore
	logger   *slog.Logger
}

// New creates a guard.
func New(resolver AccountResolver, tokens session.TokenStore, logger *slog.Logger) *Guard {
	return &Guard{resolver: resolver, tokens: tokens, logger: logger}
}

// Protect returns an http.HandlerFunc that runs the access check for page
// and only then calls next.
//
// Failed recovery does not clear the cookie. A transient backend error
// must not turn into a forced sign-out; the user lands on /login and the
// next attempt may succeed with the same token.
func (guard *Guard) Protect(page Page, next HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		token, ok := guard.tokens.Read(request)
		if !ok {
			http.Redirect(writer, request, LoginPath, http.StatusSeeOther)
			return
		}

		account, err := guard.resolver.RecoverUser(request.Context(), token)
		if err != nil {
			guard.logger.Info("session_recovery_failed",
				slog.String("page", page.Key),
				slog.String("error", err.Error()),
			)
			http.Redirect(writer, request, LoginPath, http.StatusSeeOther)
			return
		}

		if len(page.Allowed) > 0 && !account.Role.OneOf(page.Allowed...) {
			guard.logger.Info("page_access_denied",
				slog.String("page", page.Key),
				slog.Int("user_id", account.ID),
				slog.String("role", string(account.Role)),
			)
			http.Redirect(writer, request, LoginPath, http.StatusSeeOther)
			return
		}

		next(writer, request, account)
	}
}
