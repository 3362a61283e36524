// Copyright (c) 2026 Commdominium. All rights reserved.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/web/gateway"
)

// Account is the frontend's view of the logged-in user, including the role
// resolved through the userType catalog.
//
// Role comparisons always go through the resolved Role. The numeric
// IDUserType has no standalone meaning.
type Account struct {
	ID            int      `json:"id"`
	Fullname      string   `json:"fullname"`
	Email         string   `json:"email"`
	IDCondominium *int     `json:"id_condominium"`
	IDUserType    int      `json:"id_userType"`
	Block         string   `json:"block,omitempty"`
	Building      string   `json:"building,omitempty"`
	Number        string   `json:"number,omitempty"`
	AvatarArchive string   `json:"avatarArchive,omitempty"`
	Active        bool     `json:"active"`
	Role          sec.Role `json:"-"`
}

// Login is the outcome of a successful credential exchange.
type Login struct {
	Token   string
	Account *Account
}

// Gateway is the backend call surface the resolver depends on.
type Gateway interface {
	Do(ctx context.Context, method, path string, token string, body any) gateway.Result
}

// Resolver bridges credentials and stored tokens to accounts.
//
// It is deliberately side-effect-free on failure: a recovery that fails,
// even repeatedly, never evicts the stored token. Transient backend
// trouble must not silently log the user out; eviction happens only
// through an explicit sign-out.
type Resolver struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewResolver creates a resolver backed by the given gateway client.
func NewResolver(gw Gateway, logger *slog.Logger) *Resolver {
	return &Resolver{gateway: gw, logger: logger}
}

// SignIn exchanges credentials for a token and account.
func (resolver *Resolver) SignIn(ctx context.Context, email, password string) (*Login, error) {
	result := resolver.gateway.Do(ctx, http.MethodPost, "/auth/authenticate", "", map[string]string{
		"email":    email,
		"password": password,
	})

	var payload struct {
		Token string   `json:"token"`
		User  *Account `json:"user"`
	}
	if err := result.Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Token == "" || payload.User == nil {
		return nil, &gateway.APIError{Message: "malformed authenticate response"}
	}

	role, err := resolver.resolveRole(ctx, payload.Token, payload.User.IDUserType)
	if err != nil {
		return nil, err
	}
	payload.User.Role = role

	resolver.logger.Info("sign_in",
		slog.Int("user_id", payload.User.ID),
		slog.String("role", string(role)),
	)
	return &Login{Token: payload.Token, Account: payload.User}, nil
}

// RecoverUser exchanges a stored token for the account behind it.
//
// Both backend calls must succeed. Any failure is propagated untouched and
// leaves the token store alone.
func (resolver *Resolver) RecoverUser(ctx context.Context, token string) (*Account, error) {
	subject := resolver.gateway.Do(ctx, http.MethodGet, "/queryToken", token, nil)

	var identity struct {
		ID int `json:"id"`
	}
	if err := subject.Decode(&identity); err != nil {
		return nil, err
	}

	found := resolver.gateway.Do(ctx, http.MethodPost, "/user/findById", token, map[string]int{
		"id": identity.ID,
	})

	account := &Account{}
	if err := found.Decode(account); err != nil {
		return nil, err
	}

	role, err := resolver.resolveRole(ctx, token, account.IDUserType)
	if err != nil {
		return nil, err
	}
	account.Role = role

	return account, nil
}

// SignOut revokes the token server-side. Best effort: a failed revocation
// is logged, not surfaced, because the cookie is cleared regardless.
func (resolver *Resolver) SignOut(ctx context.Context, token string) {
	result := resolver.gateway.Do(ctx, http.MethodPost, "/auth/logout", token, nil)
	if !result.OK {
		resolver.logger.Warn("sign_out_revocation_failed", slog.String("error", result.Err.Message))
	}
}

// resolveRole maps a numeric userType id to the closed role enumeration by
// looking it up against the backend catalog.
func (resolver *Resolver) resolveRole(ctx context.Context, token string, userTypeID int) (sec.Role, error) {
	result := resolver.gateway.Do(ctx, http.MethodGet, "/userType/findAll", token, nil)

	var catalog []struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	}
	if err := result.Collection(&catalog); err != nil {
		return "", err
	}

	for _, entry := range catalog {
		if entry.ID == userTypeID {
			role, ok := sec.ParseRole(entry.Type)
			if !ok {
				return "", &gateway.APIError{Message: fmt.Sprintf("unknown user type %q", entry.Type)}
			}
			return role, nil
		}
	}
	return "", &gateway.APIError{Message: fmt.Sprintf("user type %d not in catalog", userTypeID)}
}
