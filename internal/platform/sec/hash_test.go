// Copyright (c) 2026 Commdominium. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/platform/sec"
)

/*
TestPasswordHashing verifies the bcrypt roundtrip and rejection of wrong
passwords.
*/
func TestPasswordHashing(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, sec.CheckPasswordHash(password, hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash(password, "not-a-bcrypt-hash"))
}

/*
TestGenerateSecureToken verifies token length and uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 random bytes hex encoded.
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

/*
TestHashToken verifies the digest is deterministic and never the identity.
*/
func TestHashToken(t *testing.T) {
	token := "an-opaque-session-token"

	digest := sec.HashToken(token)
	assert.Equal(t, digest, sec.HashToken(token))
	assert.NotEqual(t, token, digest)
	assert.Len(t, digest, 64)
	assert.NotEqual(t, digest, sec.HashToken("another-token"))
}
