// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package constants provides centralized, immutable values shared between the
API backend and the web frontend.

Categories:

  - Server Timing: read/write/idle timeouts for the HTTP servers.
  - Rate Limiting: burst capacities and IP tracking TTLs.
  - Session: cookie naming and the fixed session token lifetime.

Using this package keeps magic strings and magic numbers out of the business
logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "commdominium"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second

	// GatewayRequestTimeout bounds one frontend-to-backend call, including
	// connection setup and reading the body.
	GatewayRequestTimeout = 15 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session

const (
	// SessionCookieName is the cookie that stores the opaque bearer token.
	SessionCookieName = "commdominium.token"

	// SessionTokenTTL is the fixed lifetime of a session token. There is no
	// silent renewal; after expiry the user authenticates again.
	SessionTokenTTL = 6 * time.Hour

	// SessionTokenLength is the byte length of the random session token.
	SessionTokenLength = 32
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # Redis Prefixes

const (
	// RedisPrefixSession maps a hashed session token to its subject user id.
	RedisPrefixSession = "auth:session:"
)
