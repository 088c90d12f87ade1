package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/logging"
	"github.com/dmitrijs2005/hradmin/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLoginRejected      = errors.New("login rejected")
)

// SessionManager is the part of session.Manager used by AuthService.
type SessionManager interface {
	Begin(ctx context.Context, email string, t session.Tokens) (session.Session, error)
	Current(ctx context.Context) (session.Session, error)
	SignOut(ctx context.Context) error
}

// AuthService manages the admin's login.
type AuthService interface {
	// Login exchanges credentials for tokens and starts a session.
	Login(ctx context.Context, email string, password []byte) (session.Session, error)
	Logout(ctx context.Context) error
	// Session returns the current session, refreshed when due.
	Session(ctx context.Context) (session.Session, error)
}

type authService struct {
	client   client.Client
	cipher   *cryptox.Cipher
	sessions SessionManager
	log      logging.Logger
}

func NewAuthService(c client.Client, cipher *cryptox.Cipher, sessions SessionManager, log logging.Logger) AuthService {
	return &authService{client: c, cipher: cipher, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (session.Session, error) {
	email = strings.TrimSpace(email)
	if err := requireField("email", email); err != nil {
		return session.Session{}, err
	}
	if len(password) == 0 {
		return session.Session{}, requireField("password", "")
	}

	encrypted, err := a.cipher.EncryptPassword(string(password))
	if err != nil {
		return session.Session{}, fmt.Errorf("encrypt password: %w", err)
	}

	res, err := a.client.Login(ctx, email, encrypted)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return session.Session{}, ErrInvalidCredentials
	case err != nil:
		return session.Session{}, fmt.Errorf("login: %w", err)
	}

	if !res.Code.IsOK() || res.AccessToken == "" {
		a.log.Warn(ctx, "login rejected", "email", email, "code", res.Code.Value, "message", res.Message)
		msg := res.Message
		if msg == "" {
			msg = "code " + res.Code.Value
		}
		return session.Session{}, fmt.Errorf("%w: %s", ErrLoginRejected, msg)
	}
	if res.Code.Numeric {
		a.log.Warn(ctx, "login response carried a numeric code", "code", res.Code.Value)
	}

	s, err := a.sessions.Begin(ctx, email, session.Tokens{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
	if err != nil {
		return session.Session{}, err
	}
	a.log.Info(ctx, "logged in", "email", email, "token", logging.Redact(res.AccessToken))
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.SignOut(ctx)
}

func (a *authService) Session(ctx context.Context) (session.Session, error) {
	return a.sessions.Current(ctx)
}
