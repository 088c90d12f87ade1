package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/logging"
)

// Manager owns the persisted session and applies EnsureFresh on every read.
// It is safe for concurrent use.
type Manager struct {
	store     Store
	refresher Refresher
	now       func() time.Time
	buffer    time.Duration
	timeout   time.Duration
	log       logging.Logger

	group      singleflight.Group
	refreshing atomic.Bool
}

// DefaultRefreshTimeout bounds a load/refresh cycle when no timeout is set.
const DefaultRefreshTimeout = 30 * time.Second

type Option func(*Manager)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithBuffer sets how long before expiry a token is refreshed.
func WithBuffer(d time.Duration) Option {
	return func(m *Manager) { m.buffer = d }
}

// WithRefreshTimeout bounds one shared load/refresh cycle.
func WithRefreshTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func NewManager(store Store, refresher Refresher, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		refresher: refresher,
		now:       time.Now,
		buffer:    common.RefreshBuffer,
		timeout:   DefaultRefreshTimeout,
		log:       logging.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Begin replaces any stored session with one built from a fresh credential
// exchange.
func (m *Manager) Begin(ctx context.Context, email string, t Tokens) (Session, error) {
	s := New(email, t, m.now())
	if err := m.store.Save(ctx, s); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	m.log.Info(ctx, "session started", "email", email, "expires", s.AccessTokenExpires)
	return s, nil
}

// Current loads the session, refreshes it when it is inside the buffer
// window and persists the result. Concurrent callers share one load/refresh
// cycle, which runs detached from any single caller's cancellation and is
// bounded by the refresh timeout instead. A caller whose ctx ends first gets
// ctx.Err() while the cycle completes for the others. A missing session is
// returned as an Unauthenticated Session with a nil error.
func (m *Manager) Current(ctx context.Context) (Session, error) {
	ch := m.group.DoChan("current", func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()
		return m.current(shared)
	})

	select {
	case <-ctx.Done():
		return Session{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return Session{}, r.Err
		}
		return r.Val.(Session), nil
	}
}

func (m *Manager) current(ctx context.Context) (Session, error) {
	prior, err := m.store.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	now := m.now()
	if prior.State() == StateAuthenticated && prior.NeedsRefresh(now, m.buffer) {
		m.refreshing.Store(true)
		defer m.refreshing.Store(false)
		m.log.Debug(ctx, "refreshing access token", "email", prior.Email, "expires", prior.AccessTokenExpires)
	}

	next := EnsureFresh(ctx, prior, now, m.buffer, m.refresher)
	if next.equal(prior) {
		return prior, nil
	}

	switch next.State() {
	case StateExpired:
		m.log.Warn(ctx, "access token refresh failed", "email", next.Email, "error", next.Err)
	default:
		m.log.Info(ctx, "access token refreshed", "email", next.Email, "expires", next.AccessTokenExpires)
	}

	if err := m.store.Save(ctx, next); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	return next, nil
}

// State reports the lifecycle state, including Refreshing while a refresh
// call is in flight.
func (m *Manager) State(ctx context.Context) (State, error) {
	if m.refreshing.Load() {
		return StateRefreshing, nil
	}
	s, err := m.store.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return StateUnauthenticated, nil
	}
	if err != nil {
		return StateUnauthenticated, fmt.Errorf("load session: %w", err)
	}
	return s.State(), nil
}

// AccessToken returns a fresh access token for the Authorization header.
// It returns common.ErrNotAuthenticated without a session and the session's
// refresh error once it has expired; callers then send the request without
// credentials or ask the user to log in again.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return "", err
	}
	switch s.State() {
	case StateUnauthenticated:
		return "", common.ErrNotAuthenticated
	case StateExpired:
		return "", s.Err
	default:
		return s.AccessToken, nil
	}
}

// SignOut destroys the stored session.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	m.log.Info(ctx, "session closed")
	return nil
}
