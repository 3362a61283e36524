// Copyright (c) 2026 Commdominium. All rights reserved.

package guard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/web/guard"
	"github.com/commdominium/commdominium/internal/web/session"
)

type fakeResolver struct {
	account *session.Account
	err     error
	calls   int
}

func (f *fakeResolver) RecoverUser(_ context.Context, _ string) (*session.Account, error) {
	f.calls++
	return f.account, f.err
}

func newGuard(resolver *fakeResolver) *guard.Guard {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return guard.New(resolver, session.TokenStore{}, logger)
}

func requestWithToken(token string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/condominios", nil)
	if token != "" {
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	}
	return request
}

// spyHandler records whether the page's data path ran.
type spyHandler struct {
	called  bool
	account *session.Account
}

func (s *spyHandler) handle(_ http.ResponseWriter, _ *http.Request, account *session.Account) {
	s.called = true
	s.account = account
}

/*
TestGuard_MissingToken verifies an anonymous request is redirected before
any page work happens.
*/
func TestGuard_MissingToken(t *testing.T) {
	resolver := &fakeResolver{}
	spy := &spyHandler{}

	handler := newGuard(resolver).Protect(guard.Page{Key: "home"}, spy.handle)

	recorder := httptest.NewRecorder()
	handler(recorder, requestWithToken(""))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, guard.LoginPath, recorder.Header().Get("Location"))
	assert.False(t, spy.called)
	// Without a token there is nothing to introspect.
	assert.Zero(t, resolver.calls)
}

/*
TestGuard_InvalidToken verifies a failed recovery redirects without running
the page's data fetch, and without evicting the stored token.
*/
func TestGuard_InvalidToken(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("Session is invalid or expired")}
	spy := &spyHandler{}

	handler := newGuard(resolver).Protect(guard.Page{Key: "home"}, spy.handle)

	recorder := httptest.NewRecorder()
	handler(recorder, requestWithToken("expired-token"))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, guard.LoginPath, recorder.Header().Get("Location"))
	assert.False(t, spy.called)

	// A transient recovery failure must not clear the cookie. The next
	// attempt may succeed with the same token.
	assert.Empty(t, recorder.Header().Values("Set-Cookie"))
}

/*
TestGuard_RoleMismatch verifies a resident requesting an admin page is
redirected and the page's data fetch never runs.
*/
func TestGuard_RoleMismatch(t *testing.T) {
	resolver := &fakeResolver{account: &session.Account{ID: 10, Role: sec.RoleResident}}
	spy := &spyHandler{}

	page := guard.Page{Key: "condominiums", Allowed: []sec.Role{sec.RoleAdmin}}
	handler := newGuard(resolver).Protect(page, spy.handle)

	recorder := httptest.NewRecorder()
	handler(recorder, requestWithToken("valid-token"))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, guard.LoginPath, recorder.Header().Get("Location"))
	assert.False(t, spy.called)
}

/*
TestGuard_AllowedRolePasses verifies the page handler runs with the
recovered account once every check passes.
*/
func TestGuard_AllowedRolePasses(t *testing.T) {
	account := &session.Account{ID: 10, Fullname: "Maria Souza", Role: sec.RoleAdmin}
	resolver := &fakeResolver{account: account}
	spy := &spyHandler{}

	page := guard.Page{Key: "condominiums", Allowed: []sec.Role{sec.RoleAdmin}}
	handler := newGuard(resolver).Protect(page, spy.handle)

	recorder := httptest.NewRecorder()
	handler(recorder, requestWithToken("valid-token"))

	assert.True(t, spy.called)
	assert.Equal(t, account, spy.account)
	assert.Equal(t, 1, resolver.calls)
}

/*
TestGuard_DenyByDefault walks every (role, page) pair of the access table
and asserts the guard's decision matches it exactly.
*/
func TestGuard_DenyByDefault(t *testing.T) {
	anyRole := []sec.Role(nil)
	staff := []sec.Role{sec.RoleAdmin, sec.RoleAssignee}
	adminOnly := []sec.Role{sec.RoleAdmin}

	pages := map[string][]sec.Role{
		"home":         anyRole,
		"notices":      anyRole,
		"complaints":   anyRole,
		"payments":     staff,
		"residents":    staff,
		"condominiums": adminOnly,
		"users":        adminOnly,
	}

	granted := map[sec.Role]map[string]bool{
		sec.RoleAdmin: {
			"home": true, "payments": true, "notices": true, "complaints": true,
			"residents": true, "condominiums": true, "users": true,
		},
		sec.RoleAssignee: {
			"home": true, "payments": true, "notices": true, "complaints": true,
			"residents": true,
		},
		sec.RoleResident: {
			"home": true, "notices": true, "complaints": true,
		},
	}

	for role, pageGrants := range granted {
		for pageKey, allowed := range pages {
			resolver := &fakeResolver{account: &session.Account{ID: 1, Role: role}}
			spy := &spyHandler{}

			handler := newGuard(resolver).Protect(guard.Page{Key: pageKey, Allowed: allowed}, spy.handle)

			recorder := httptest.NewRecorder()
			handler(recorder, requestWithToken("valid-token"))

			if pageGrants[pageKey] {
				assert.True(t, spy.called, "%s should open %s", role, pageKey)
			} else {
				require.False(t, spy.called, "%s must not open %s", role, pageKey)
				assert.Equal(t, guard.LoginPath, recorder.Header().Get("Location"))
			}
		}
	}
}
