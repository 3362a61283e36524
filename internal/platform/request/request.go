// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts common body decoding patterns and identity extraction, ensuring
consistent error handling across handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/ctxutil"
	"github.com/commdominium/commdominium/internal/platform/sec"
	"github.com/commdominium/commdominium/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Identity extracts the authenticated identity from the request context.
//
// Returns nil if the request is anonymous.
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

// RequiredIdentity ensures the request is authenticated and returns the identity.
//
// Returns apperr.Unauthorized for anonymous requests.
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return identity, nil
}

// BearerToken returns the raw bearer credential from the Authorization
// header, or "" when absent or malformed.
func BearerToken(request *http.Request) string {
	const prefix = "Bearer "
	header := request.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
