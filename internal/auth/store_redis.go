// Copyright (c) 2026 Commdominium. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// Expiry is delegated entirely to the key TTL; no sweeper is needed.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Set stores a token digest with its subject user id and TTL.
func (repository *RedisSessionRepository) Set(context context.Context, tokenHash string, userID int, ttl time.Duration) error {
	key := constants.RedisPrefixSession + tokenHash

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

// Get resolves a token digest to its subject user id.
//
// Returns apperr.Unauthorized when the digest is absent or expired.
func (repository *RedisSessionRepository) Get(context context.Context, tokenHash string) (int, error) {
	key := constants.RedisPrefixSession + tokenHash

	value, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.Unauthorized("Session is invalid or expired")
		}
		return 0, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	userID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("redis_session_corrupt_value: %w", err)
	}

	return userID, nil
}

// Delete removes a token digest. Absent digests are not an error.
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {
	key := constants.RedisPrefixSession + tokenHash

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
