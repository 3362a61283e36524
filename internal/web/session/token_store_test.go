// Copyright (c) 2026 Commdominium. All rights reserved.

package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/web/session"
)

// requestWithCookies replays the Set-Cookie headers of a response onto a
// fresh request, the way a browser would on the next navigation.
func requestWithCookies(t *testing.T, recorder *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			request.AddCookie(cookie)
		}
	}
	return request
}

/*
TestTokenStore_Roundtrip verifies write-then-read returns the same token.
*/
func TestTokenStore_Roundtrip(t *testing.T) {
	store := session.TokenStore{}

	recorder := httptest.NewRecorder()
	store.Write(recorder, "opaque-token-123", 6*time.Hour)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "commdominium.token", cookies[0].Name)
	assert.Equal(t, int((6 * time.Hour).Seconds()), cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	token, ok := store.Read(requestWithCookies(t, recorder))
	assert.True(t, ok)
	assert.Equal(t, "opaque-token-123", token)
}

/*
TestTokenStore_AbsenceIsNotAnError verifies an anonymous request reads as
absent, not as a failure.
*/
func TestTokenStore_AbsenceIsNotAnError(t *testing.T) {
	store := session.TokenStore{}

	token, ok := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Empty(t, token)
}

/*
TestTokenStore_Clear verifies clear-then-read returns absent and that
clearing twice is harmless.
*/
func TestTokenStore_Clear(t *testing.T) {
	store := session.TokenStore{}

	recorder := httptest.NewRecorder()
	store.Clear(recorder)
	store.Clear(recorder)

	for _, cookie := range recorder.Result().Cookies() {
		assert.Negative(t, cookie.MaxAge)
		assert.Empty(t, cookie.Value)
	}

	_, ok := store.Read(requestWithCookies(t, recorder))
	assert.False(t, ok)
}
