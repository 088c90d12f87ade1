// Package common defines shared constants and sentinel errors used across
// the cipher, session and client layers of hradmin. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Cipher errors.
	ErrDecryption = errors.New("decryption failed")
	ErrInvalidKey = errors.New("invalid cipher key")

	// Token errors. ErrTokenDecode never escapes the jwtx package API, it is
	// only used to describe why a token was treated as expired.
	ErrTokenDecode = errors.New("token decode failed")

	// Session lifecycle errors.
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRefreshAccessToken = errors.New("refresh access token error")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
