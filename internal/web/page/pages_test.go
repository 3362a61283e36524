// Copyright (c) 2026 Commdominium. All rights reserved.

package page_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/platform/constants"
	"github.com/commdominium/commdominium/internal/web/gateway"
	"github.com/commdominium/commdominium/internal/web/page"
	"github.com/commdominium/commdominium/internal/web/session"
)

type fakeGateway struct {
	results map[string]gateway.Result
}

func (f *fakeGateway) Do(_ context.Context, method, path, _ string, _ any) gateway.Result {
	result, ok := f.results[method+" "+path]
	if !ok {
		return gateway.Result{Status: http.StatusNotFound, Err: &gateway.APIError{Message: "Resource not found"}}
	}
	return result
}

func okResult(v any) gateway.Result {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return gateway.Result{OK: true, Status: http.StatusOK, Data: data}
}

func newTestHandlers(t *testing.T, gw *fakeGateway) *page.Handlers {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer, err := page.NewRenderer(logger)
	require.NoError(t, err)

	resolver := session.NewResolver(gw, logger)
	return page.NewHandlers(renderer, gw, resolver, session.TokenStore{}, logger)
}

func catalogResult() gateway.Result {
	return okResult([]map[string]any{
		{"id": 1, "type": "Admin"},
		{"id": 2, "type": "Síndico"},
		{"id": 3, "type": "Morador"},
	})
}

func loginForm(email, password string) *http.Request {
	form := url.Values{"email": {email}, "password": {password}}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

/*
TestLoginSubmit_Success verifies a valid credential exchange writes the
session cookie and redirects to the home page.
*/
func TestLoginSubmit_Success(t *testing.T) {
	gw := &fakeGateway{results: map[string]gateway.Result{
		"POST /auth/authenticate": okResult(map[string]any{
			"token": "0a1b2c3d",
			"user":  map[string]any{"id": 4, "fullname": "Maria Souza", "id_userType": 1, "active": true},
		}),
		"GET /userType/findAll": catalogResult(),
	}}
	handlers := newTestHandlers(t, gw)

	recorder := httptest.NewRecorder()
	handlers.LoginSubmit(recorder, loginForm("maria@example.com", "s3cret"))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "0a1b2c3d", cookies[0].Value)
	assert.Equal(t, int(constants.SessionTokenTTL.Seconds()), cookies[0].MaxAge)
}

/*
TestLoginSubmit_BadCredentials verifies the backend's message lands in the
re-rendered form and no cookie is written.
*/
func TestLoginSubmit_BadCredentials(t *testing.T) {
	gw := &fakeGateway{results: map[string]gateway.Result{
		"POST /auth/authenticate": {
			Status: http.StatusUnauthorized,
			Err:    &gateway.APIError{Message: "Email or password incorrect"},
		},
	}}
	handlers := newTestHandlers(t, gw)

	recorder := httptest.NewRecorder()
	handlers.LoginSubmit(recorder, loginForm("maria@example.com", "wrong"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email or password incorrect")
	assert.Empty(t, recorder.Result().Cookies())
}

/*
TestLoginSubmit_MissingFields verifies empty credentials never reach the
backend.
*/
func TestLoginSubmit_MissingFields(t *testing.T) {
	gw := &fakeGateway{results: map[string]gateway.Result{}}
	handlers := newTestHandlers(t, gw)

	recorder := httptest.NewRecorder()
	handlers.LoginSubmit(recorder, loginForm("", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email and password are required")
	assert.Empty(t, recorder.Result().Cookies())
}

/*
TestHome_RendersFeed verifies the home page lists the board feed rows
returned by the backend.
*/
func TestHome_RendersFeed(t *testing.T) {
	gw := &fakeGateway{results: map[string]gateway.Result{
		"GET /services/findAllOrderedNotices": okResult([]map[string]any{
			{"id": 1, "title": "Assembleia geral", "message": "Dia 10, 19h", "createdAt": "2026-03-01T10:00:00Z"},
		}),
		"GET /services/findAllOrderedPayments": okResult([]map[string]any{
			{"id": 2, "billArchive": "https://bills/march.pdf", "dueDate": "2026-03-05T00:00:00Z", "paid": false, "id_user": 4},
		}),
	}}
	handlers := newTestHandlers(t, gw)

	account := &session.Account{ID: 4, Fullname: "Maria Souza", Role: "Admin"}
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "0a1b2c3d"})

	recorder := httptest.NewRecorder()
	handlers.Home(recorder, request, account)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Assembleia geral")
	assert.Contains(t, recorder.Body.String(), "Maria Souza")
	assert.Contains(t, recorder.Body.String(), "Em aberto")
}

/*
TestHome_EmptyFeed verifies a backend 204 renders the empty state instead
of a fetch failure.
*/
func TestHome_EmptyFeed(t *testing.T) {
	gw := &fakeGateway{results: map[string]gateway.Result{
		"GET /services/findAllOrderedNotices":  {OK: true, Status: http.StatusNoContent},
		"GET /services/findAllOrderedPayments": {OK: true, Status: http.StatusNoContent},
	}}
	handlers := newTestHandlers(t, gw)

	account := &session.Account{ID: 4, Fullname: "Maria Souza", Role: "Morador"}
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "0a1b2c3d"})

	recorder := httptest.NewRecorder()
	handlers.Home(recorder, request, account)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Nenhum aviso")
}
