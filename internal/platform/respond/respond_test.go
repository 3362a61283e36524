// Copyright (c) 2026 Commdominium. All rights reserved.

package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/respond"
)

/*
TestCollection verifies the legacy list contract: 204 for empty or nil,
200 with the raw JSON array otherwise.
*/
func TestCollection(t *testing.T) {
	type row struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name       string
		items      interface{}
		wantStatus int
	}{
		{"nil_slice", []*row(nil), http.StatusNoContent},
		{"empty_slice", []*row{}, http.StatusNoContent},
		{"untyped_nil", nil, http.StatusNoContent},
		{"populated", []*row{{ID: 1}, {ID: 2}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Collection(recorder, tt.items)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var decoded []row
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
				assert.Len(t, decoded, 2)
			} else {
				assert.Empty(t, recorder.Body.Bytes())
			}
		})
	}
}

/*
TestOK_RawBody verifies entities are written without a success envelope.
*/
func TestOK_RawBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"token":"abc"}`, recorder.Body.String())
}

/*
TestError_LegacyEnvelope verifies failures carry the message under the
"error" key with the mapped status code.
*/
func TestError_LegacyEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/user/findAll", nil)

	respond.Error(recorder, request, apperr.NotFound("User"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "User not found", envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

/*
TestError_UnknownErrorIsHidden verifies non-AppError failures become an
opaque 500 without leaking internals.
*/
func TestError_UnknownErrorIsHidden(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}
