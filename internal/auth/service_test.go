// Copyright (c) 2026 Commdominium. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/auth"
	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/user"
)

// # Test Doubles

type fakeUserRepository struct {
	byEmail map[string]*user.User
	byID    map[int]*user.User
}

func (f *fakeUserRepository) Create(_ context.Context, _ *user.User) error { return nil }

func (f *fakeUserRepository) FindByID(_ context.Context, id int) (*user.User, error) {
	if account, ok := f.byID[id]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if account, ok := f.byEmail[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindAll(_ context.Context) ([]*user.User, error) { return nil, nil }

func (f *fakeUserRepository) FindAllByCondominium(_ context.Context, _ int) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) Update(_ context.Context, _ *user.User) error     { return nil }
func (f *fakeUserRepository) SetActive(_ context.Context, _ int, _ bool) error { return nil }
func (f *fakeUserRepository) Delete(_ context.Context, _ int) error            { return nil }

type fakeSessionRepository struct {
	entries map[string]int
	deletes int
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{entries: map[string]int{}}
}

func (f *fakeSessionRepository) Set(_ context.Context, tokenHash string, userID int, _ time.Duration) error {
	f.entries[tokenHash] = userID
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, tokenHash string) (int, error) {
	if userID, ok := f.entries[tokenHash]; ok {
		return userID, nil
	}
	return 0, apperr.Unauthorized("Session is invalid or expired")
}

func (f *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	f.deletes++
	delete(f.entries, tokenHash)
	return nil
}

type fakeRoleResolver struct {
	roles map[int]sec.Role
}

func (f *fakeRoleResolver) ResolveRole(_ context.Context, id int) (sec.Role, error) {
	if role, ok := f.roles[id]; ok {
		return role, nil
	}
	return "", apperr.Internal(nil)
}

func newTestService(t *testing.T, accounts ...*user.User) (*auth.Service, *fakeSessionRepository) {
	t.Helper()

	users := &fakeUserRepository{byEmail: map[string]*user.User{}, byID: map[int]*user.User{}}
	for _, account := range accounts {
		users.byEmail[account.Email] = account
		users.byID[account.ID] = account
	}

	sessions := newFakeSessionRepository()
	roles := &fakeRoleResolver{roles: map[int]sec.Role{
		1: sec.RoleAdmin, 2: sec.RoleAssignee, 3: sec.RoleResident,
	}}

	return auth.NewService(users, sessions, roles), sessions
}

func activeAccount(t *testing.T, id int, email, password string, userType int) *user.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	condominiumID := 5
	return &user.User{
		ID:            id,
		Fullname:      "Maria Souza",
		Email:         email,
		PasswordHash:  hash,
		IDCondominium: &condominiumID,
		IDUserType:    userType,
		Active:        true,
	}
}

// # Credential Exchange

/*
TestService_Authenticate_Success verifies the happy path: an opaque token is
issued and only its digest is stored.
*/
func TestService_Authenticate_Success(t *testing.T) {
	account := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 3)
	service, sessions := newTestService(t, account)

	login, err := service.Authenticate(context.Background(), "maria@example.com", "hunter2hunter2")
	require.NoError(t, err)

	// 32 random bytes, hex encoded, never stored raw.
	assert.Len(t, login.Token, 64)
	assert.NotContains(t, sessions.entries, login.Token)
	assert.Equal(t, 10, sessions.entries[sec.HashToken(login.Token)])

	assert.Equal(t, account, login.User)
	assert.WithinDuration(t, time.Now().Add(6*time.Hour), login.ExpiresAt, time.Minute)
}

/*
TestService_Authenticate_Rejections verifies that bad credentials, unknown
accounts and disabled accounts all fail with the same generic message.
*/
func TestService_Authenticate_Rejections(t *testing.T) {
	active := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 3)

	disabled := activeAccount(t, 11, "jose@example.com", "hunter2hunter2", 3)
	disabled.Active = false

	service, sessions := newTestService(t, active, disabled)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong_password", "maria@example.com", "not-the-password"},
		{"unknown_email", "nobody@example.com", "hunter2hunter2"},
		{"disabled_account", "jose@example.com", "hunter2hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authenticate(context.Background(), tt.email, tt.password)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			// Same message for every rejection, no account enumeration.
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}

	assert.Empty(t, sessions.entries)
}

// # Token Introspection

/*
TestService_QueryToken verifies the digest lookup and, critically, that a
failed lookup performs no session mutation.
*/
func TestService_QueryToken(t *testing.T) {
	account := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 3)
	service, sessions := newTestService(t, account)

	login, err := service.Authenticate(context.Background(), "maria@example.com", "hunter2hunter2")
	require.NoError(t, err)

	subject, err := service.QueryToken(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Equal(t, 10, subject.ID)

	// Unknown token fails without evicting anything.
	_, err = service.QueryToken(context.Background(), "counterfeit-token")
	require.Error(t, err)
	assert.Zero(t, sessions.deletes)
	assert.Len(t, sessions.entries, 1)
}

/*
TestService_Introspect verifies the full chain from token to authorized
identity.
*/
func TestService_Introspect(t *testing.T) {
	account := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 2)
	service, _ := newTestService(t, account)

	login, err := service.Authenticate(context.Background(), "maria@example.com", "hunter2hunter2")
	require.NoError(t, err)

	identity, err := service.Introspect(context.Background(), login.Token)
	require.NoError(t, err)

	assert.Equal(t, 10, identity.UserID)
	assert.Equal(t, sec.RoleAssignee, identity.Role)
	assert.Equal(t, 5, identity.CondominiumID)
}

/*
TestService_Introspect_DisabledAccount verifies a session belonging to a
deactivated account stops authorizing immediately.
*/
func TestService_Introspect_DisabledAccount(t *testing.T) {
	account := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 3)
	service, _ := newTestService(t, account)

	login, err := service.Authenticate(context.Background(), "maria@example.com", "hunter2hunter2")
	require.NoError(t, err)

	account.Active = false

	_, err = service.Introspect(context.Background(), login.Token)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

// # Revocation

/*
TestService_Logout verifies revocation is idempotent and tolerant of empty
tokens.
*/
func TestService_Logout(t *testing.T) {
	account := activeAccount(t, 10, "maria@example.com", "hunter2hunter2", 3)
	service, sessions := newTestService(t, account)

	login, err := service.Authenticate(context.Background(), "maria@example.com", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.Token))
	assert.Empty(t, sessions.entries)

	// Revoking again, or revoking nothing, still succeeds.
	require.NoError(t, service.Logout(context.Background(), login.Token))
	require.NoError(t, service.Logout(context.Background(), ""))
}
