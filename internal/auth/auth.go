// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package auth implements the session layer behind the authentication endpoints.

# Architecture

The session credential is an opaque random token. The client never inspects
it; the backend resolves it by lookup in Redis, where the SHA-256 digest of
the token maps to the subject's user id with the fixed session TTL. Expiry is
purely passive: Redis drops the key and subsequent introspections fail, at
which point the user authenticates again. There is no refresh and no silent
renewal.

  - Service: credential exchange, token introspection, explicit logout.
  - SessionRepository: the Redis-backed token store.
*/
package auth

import (
	"time"

	"github.com/commdominium/commdominium/internal/user"
)

// LoginSession represents a successfully established session.
type LoginSession struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"-"`
	User      *user.User `json:"user"`
}

// TokenSubject identifies the principal behind an introspected token.
//
// This is the wire shape of GET /queryToken.
type TokenSubject struct {
	ID int `json:"id"`
}

// # Field Identifiers

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
