// Copyright (c) 2026 Commdominium. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/auth"
	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/sec"
)

func newSessionRepository(t *testing.T) (*auth.RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewSessionRepository(client), server
}

/*
TestSessionRepository_Roundtrip verifies a stored token digest resolves to
its subject until the TTL elapses.
*/
func TestSessionRepository_Roundtrip(t *testing.T) {
	repository, server := newSessionRepository(t)
	ctx := context.Background()

	digest := sec.HashToken("some-opaque-token")
	require.NoError(t, repository.Set(ctx, digest, 42, time.Hour))

	userID, err := repository.Get(ctx, digest)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	// Passive expiry: once the TTL elapses the digest resolves to nothing.
	server.FastForward(2 * time.Hour)

	_, err = repository.Get(ctx, digest)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestSessionRepository_GetUnknown verifies an absent digest maps to an
unauthorized error, not an internal one.
*/
func TestSessionRepository_GetUnknown(t *testing.T) {
	repository, _ := newSessionRepository(t)

	_, err := repository.Get(context.Background(), sec.HashToken("never-issued"))
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestSessionRepository_DeleteIdempotent verifies revoking twice is harmless.
*/
func TestSessionRepository_DeleteIdempotent(t *testing.T) {
	repository, _ := newSessionRepository(t)
	ctx := context.Background()

	digest := sec.HashToken("short-lived")
	require.NoError(t, repository.Set(ctx, digest, 7, time.Hour))

	require.NoError(t, repository.Delete(ctx, digest))
	require.NoError(t, repository.Delete(ctx, digest))

	_, err := repository.Get(ctx, digest)
	require.Error(t, err)
}
