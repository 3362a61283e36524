// Copyright (c) 2026 Commdominium. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/user"
	"github.com/commdominium/commdominium/internal/usertype"
)

// RoleResolver maps a numeric id_userType to its closed role.
type RoleResolver interface {
	ResolveRole(context context.Context, id int) (sec.Role, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is the security boundary of the whole system. Changes to the
// credential exchange or introspection logic need a second reviewer.
type Service struct {
	users    user.Repository
	sessions SessionRepository
	roles    RoleResolver
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users user.Repository, sessions SessionRepository, roles RoleResolver) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		roles:    roles,
	}
}

// Authenticate validates credentials and issues an opaque session token.
//
// Disabled accounts are rejected exactly like bad credentials so the
// response does not reveal account state.
func (service *Service) Authenticate(context context.Context, email, password string) (*LoginSession, error) {
	account, err := service.users.FindByEmail(context, email)
	if err != nil {
		// Generic message to prevent account enumeration.
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !account.Active {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	token, err := sec.GenerateSecureToken(constants.SessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.SessionTokenTTL)
	if err := service.sessions.Set(context, sec.HashToken(token), account.ID, constants.SessionTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      account,
	}, nil
}

// QueryToken resolves an opaque token to the subject behind it.
//
// Introspection never mutates the session: a failed lookup must not evict
// anything, so a transient backend error never logs the user out.
func (service *Service) QueryToken(context context.Context, token string) (*TokenSubject, error) {
	userID, err := service.sessions.Get(context, sec.HashToken(token))
	if err != nil {
		return nil, err
	}
	return &TokenSubject{ID: userID}, nil
}

// Introspect resolves a token all the way to an authorized identity.
//
// It implements middleware.Introspector for the API's bearer chain: token →
// user id → account → resolved role.
func (service *Service) Introspect(context context.Context, token string) (*sec.Identity, error) {
	subject, err := service.QueryToken(context, token)
	if err != nil {
		return nil, err
	}

	account, err := service.users.FindByID(context, subject.ID)
	if err != nil {
		return nil, apperr.Unauthorized("Session subject no longer exists")
	}

	if !account.Active {
		return nil, apperr.Unauthorized("Account is disabled")
	}

	role, err := service.roles.ResolveRole(context, account.IDUserType)
	if err != nil {
		return nil, apperr.Unauthorized("Account has no resolvable role")
	}

	identity := &sec.Identity{
		UserID: account.ID,
		Role:   role,
	}
	if account.IDCondominium != nil {
		identity.CondominiumID = *account.IDCondominium
	}

	return identity, nil
}

// Logout revokes the presented token. It is idempotent: revoking an already
// absent token succeeds.
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}
	return service.sessions.Delete(context, sec.HashToken(token))
}

// statically assert the usertype service satisfies the resolver contract.
var _ RoleResolver = (*usertype.Service)(nil)
