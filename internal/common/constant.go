// Package common contains shared constants and sentinel errors used across
// hradmin components.
package common

import "time"

const (
	// AuthorizationHeaderName carries the bearer access token on outbound
	// requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a client request with server logs.
	RequestIDHeaderName = "X-Request-ID"

	// RefreshBuffer is how long before expiry an access token is refreshed.
	RefreshBuffer = 60 * time.Second

	// DefaultTokenLifetime is assumed when a token carries no usable exp claim.
	DefaultTokenLifetime = time.Hour
)
