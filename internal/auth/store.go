// Copyright (c) 2026 Commdominium. All rights reserved.

package auth

import (
	"context"
	"time"
)

// SessionRepository defines the contract for the volatile session token store.
//
// Implementations persist only token digests, never the raw credential.
type SessionRepository interface {
	// Set stores a token digest for a user id with the given lifetime.
	Set(context context.Context, tokenHash string, userID int, ttl time.Duration) error

	// Get resolves a token digest to the subject user id.
	// Absent or expired digests yield apperr.Unauthorized.
	Get(context context.Context, tokenHash string) (int, error)

	// Delete removes a token digest. Deleting an absent digest is not an
	// error; logout must be idempotent.
	Delete(context context.Context, tokenHash string) error
}
