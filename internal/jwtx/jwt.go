// Package jwtx reads claims from bearer tokens issued by the platform's
// authentication server.
//
// The client never holds the signing secret, so signatures are not verified
// here; the server does that on every request. Decoding failures are soft:
// a token that cannot be read is reported as not-ok and treated as expired.
package jwtx

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type expiryClaims struct {
	Exp *jwt.NumericDate `json:"exp"`
}

// DecodeExpiry returns the exp claim of token. Only the payload segment is
// read; the header and signature are ignored. ok is false when the payload
// cannot be decoded or carries no exp claim.
func DecodeExpiry(token string) (exp time.Time, ok bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	var claims expiryClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == nil {
		return time.Time{}, false
	}
	return claims.Exp.Time, true
}

// decodeSegment accepts the URL-safe and the standard alphabet, padded or not.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.TrimRight(seg, "=")
	b, err := base64.RawURLEncoding.DecodeString(seg)
	if err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(seg)
}

// ExpiryMillis returns the exp claim as epoch milliseconds.
func ExpiryMillis(token string) (int64, bool) {
	exp, ok := DecodeExpiry(token)
	if !ok {
		return 0, false
	}
	return exp.UnixMilli(), true
}

// IsExpired reports whether token is unusable at now: unreadable, missing an
// exp claim, or exp <= now.
func IsExpired(token string, now time.Time) bool {
	exp, ok := DecodeExpiry(token)
	if !ok {
		return true
	}
	return !now.Before(exp)
}

// ExpiryOrDefault returns the token's exp, or now+fallback when it cannot be
// read.
func ExpiryOrDefault(token string, now time.Time, fallback time.Duration) time.Time {
	if exp, ok := DecodeExpiry(token); ok {
		return exp
	}
	return now.Add(fallback)
}
