package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/session"
	"github.com/dmitrijs2005/hradmin/internal/testutil"
)

const testKey = "hrhrhr!!@00000000000000000000000"

func newCipher(t *testing.T) *cryptox.Cipher {
	t.Helper()
	c, err := cryptox.NewCipher(testKey)
	require.NoError(t, err)
	return c
}

func newAuth(t *testing.T, fc *fakeClient) (AuthService, *session.Manager) {
	t.Helper()
	m := session.NewManager(session.NewMemoryStore(), fc, session.WithLogger(testutil.MakeNoopLogger()))
	return NewAuthService(fc, newCipher(t), m, testutil.MakeNoopLogger()), m
}

func okLogin(t *testing.T, numeric bool) *client.LoginResult {
	return &client.LoginResult{
		Code:         client.Code{Value: "200", Numeric: numeric},
		AccessToken:  testutil.MakeToken(t, "admin@example.com", time.Now().Add(time.Hour)),
		RefreshToken: "R",
	}
}

func TestAuthService_Login(t *testing.T) {
	for _, numeric := range []bool{false, true} {
		fc := &fakeClient{loginRes: okLogin(t, numeric)}
		auth, m := newAuth(t, fc)
		ctx := context.Background()

		s, err := auth.Login(ctx, "  admin@example.com ", []byte("password123!"))
		require.NoError(t, err)

		assert.Equal(t, "admin@example.com", fc.lastEmail)
		assert.Equal(t, "cGINOjR+tRVE9JT2++8ayQ==", fc.lastPassword)
		assert.Equal(t, session.StateAuthenticated, s.State())
		assert.Equal(t, "R", s.RefreshToken)

		tok, err := m.AccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, fc.loginRes.AccessToken, tok)
	}
}

func TestAuthService_LoginValidation(t *testing.T) {
	fc := &fakeClient{}
	auth, _ := newAuth(t, fc)

	_, err := auth.Login(context.Background(), " ", []byte("x"))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = auth.Login(context.Background(), "a@b.c", nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Zero(t, fc.calls)
}

func TestAuthService_LoginFailures(t *testing.T) {
	tests := []struct {
		name string
		res  *client.LoginResult
		err  error
		want error
	}{
		{name: "401", err: &client.APIError{Status: 401, Kind: client.ErrUnauthorized}, want: ErrInvalidCredentials},
		{name: "unavailable", err: client.ErrUnavailable, want: client.ErrUnavailable},
		{name: "bad code", res: &client.LoginResult{Code: client.Code{Value: "400"}, Message: "locked", AccessToken: "x"}, want: ErrLoginRejected},
		{name: "no data", res: &client.LoginResult{Code: client.Code{Value: "200"}}, want: ErrLoginRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{loginRes: tt.res, loginErr: tt.err}
			auth, m := newAuth(t, fc)

			_, err := auth.Login(context.Background(), "a@b.c", []byte("pw"))
			assert.ErrorIs(t, err, tt.want)

			st, err := m.State(context.Background())
			require.NoError(t, err)
			assert.Equal(t, session.StateUnauthenticated, st)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	fc := &fakeClient{loginRes: okLogin(t, false)}
	auth, _ := newAuth(t, fc)
	ctx := context.Background()

	_, err := auth.Login(ctx, "a@b.c", []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	s, err := auth.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.StateUnauthenticated, s.State())
}

type failingManager struct{ err error }

func (f failingManager) Begin(context.Context, string, session.Tokens) (session.Session, error) {
	return session.Session{}, f.err
}
func (f failingManager) Current(context.Context) (session.Session, error) { return session.Session{}, f.err }
func (f failingManager) SignOut(context.Context) error                    { return f.err }

func TestAuthService_StoreFailure(t *testing.T) {
	boom := errors.New("disk")
	fc := &fakeClient{loginRes: okLogin(t, false)}
	auth := NewAuthService(fc, newCipher(t), failingManager{err: boom}, testutil.MakeNoopLogger())

	_, err := auth.Login(context.Background(), "a@b.c", []byte("pw"))
	assert.ErrorIs(t, err, boom)
}
