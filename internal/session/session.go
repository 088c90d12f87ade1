package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/jwtx"
)

// State is the lifecycle position of a session.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateRefreshing
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshing:
		return "refreshing"
	case StateExpired:
		return "expired"
	default:
		return "unauthenticated"
	}
}

// Tokens is the credential pair issued by the login endpoint.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Session is an immutable snapshot. Methods never modify the receiver.
type Session struct {
	Email              string
	AccessToken        string
	RefreshToken       string
	AccessTokenExpires time.Time
	// Err is nil, or wraps common.ErrRefreshAccessToken after a failed refresh.
	Err error
}

// New starts a session from a successful credential exchange. The expiry is
// read from the access token's exp claim, falling back to now + 1h.
func New(email string, t Tokens, now time.Time) Session {
	return Session{
		Email:              email,
		AccessToken:        t.AccessToken,
		RefreshToken:       t.RefreshToken,
		AccessTokenExpires: jwtx.ExpiryOrDefault(t.AccessToken, now, common.DefaultTokenLifetime),
	}
}

// State derives the lifecycle state of the snapshot.
func (s Session) State() State {
	switch {
	case s.AccessToken == "":
		return StateUnauthenticated
	case s.Err != nil:
		return StateExpired
	default:
		return StateAuthenticated
	}
}

// ExpiresAtMillis returns AccessTokenExpires as epoch milliseconds.
func (s Session) ExpiresAtMillis() int64 {
	return s.AccessTokenExpires.UnixMilli()
}

// NeedsRefresh reports whether now is inside the buffer window before expiry.
func (s Session) NeedsRefresh(now time.Time, buffer time.Duration) bool {
	return !now.Before(s.AccessTokenExpires.Add(-buffer))
}

func (s Session) equal(o Session) bool {
	return s.Email == o.Email &&
		s.AccessToken == o.AccessToken &&
		s.RefreshToken == o.RefreshToken &&
		s.AccessTokenExpires.Equal(o.AccessTokenExpires) &&
		errors.Is(s.Err, o.Err) && errors.Is(o.Err, s.Err)
}

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context, refreshToken string) (string, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return f(ctx, refreshToken)
}

// EnsureFresh applies the refresh policy to prior and returns the resulting
// snapshot. It calls r at most once and never returns an error: a failed
// refresh is recorded in the returned Session's Err field with the prior
// tokens left in place. The refresh token is never rotated.
//
// Unauthenticated and Expired sessions are returned unchanged. If ctx is
// done after a failed refresh the caller gave up, so prior is returned as is
// instead of being marked Expired.
func EnsureFresh(ctx context.Context, prior Session, now time.Time, buffer time.Duration, r Refresher) Session {
	if prior.State() != StateAuthenticated || !prior.NeedsRefresh(now, buffer) {
		return prior
	}

	access, err := r.Refresh(ctx, prior.RefreshToken)
	if err == nil && access == "" {
		err = errors.New("refresh response carried no access token")
	}
	if err != nil {
		if ctx.Err() != nil {
			return prior
		}
		next := prior
		next.Err = fmt.Errorf("%w: %w", common.ErrRefreshAccessToken, err)
		return next
	}

	next := prior
	next.AccessToken = access
	next.AccessTokenExpires = jwtx.ExpiryOrDefault(access, now, common.DefaultTokenLifetime)
	next.Err = nil
	return next
}
