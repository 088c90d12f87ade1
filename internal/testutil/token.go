// Package testutil contains helpers shared by package tests: signed bearer
// tokens shaped like the ones the platform issues and a silent logger.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/hradmin/internal/logging"
)

// TokenSecret signs test tokens. Clients never verify signatures, so any
// value works.
const TokenSecret = "test-secret"

// MakeToken returns an HS256 token for email expiring at exp.
func MakeToken(t testing.TB, email string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte(TokenSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// MakeTokenWithoutExpiry returns a well-formed token that has no exp claim.
func MakeTokenWithoutExpiry(t testing.TB, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: email})
	s, err := tok.SignedString([]byte(TokenSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// MakeNoopLogger returns a logger that discards output.
func MakeNoopLogger() logging.Logger {
	return logging.NewNop()
}
