// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package respond provides HTTP response helpers used by all API handlers.

# Wire Contract

The legacy Commdominium API returns entities as raw JSON bodies (no success
envelope) and failures as a JSON object whose "error" key carries a
human-readable message. List endpoints answer 204 No Content instead of an
empty array; clients are expected to treat that as "empty, not erroneous".
Every handler goes through this package so the contract is applied in exactly
one place.
*/
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses.
//
// The "error" message is the only field legacy clients read; Code and Details
// are additive for newer consumers.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the raw body.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response with the payload as the raw body.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Collection writes a list response under the legacy contract: 204 when the
// collection is empty or nil, 200 with the JSON array otherwise.
func Collection(writer http.ResponseWriter, items interface{}) {
	value := reflect.ValueOf(items)
	if items == nil || (value.Kind() == reflect.Slice && value.Len() == 0) {
		NoContent(writer)
		return
	}
	JSON(writer, http.StatusOK, items)
}

// Error converts any Go error into the standardized JSON error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the
		// client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
