package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/session"
)

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	pw, err := a.password()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	s, err := a.auth.Login(ctx, email, pw)
	if err != nil {
		return err
	}
	a.expiredShown.Store(false)
	a.printf("Logged in as %s, access token valid until %s\n", s.Email, s.AccessTokenExpires.Local().Format(time.DateTime))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	if st, err := a.sessions.State(ctx); err == nil && st == session.StateRefreshing {
		a.println("Refreshing the access token...")
	}
	s, err := a.auth.Session(ctx)
	if err != nil {
		return err
	}

	state := s.State()
	a.println("State:", state)
	if state == session.StateUnauthenticated {
		return nil
	}
	left := time.Until(s.AccessTokenExpires).Truncate(time.Second)
	fields(a.out,
		"Email", s.Email,
		"Token expires", s.AccessTokenExpires.Local().Format(time.DateTime),
		"Time left", left.String(),
	)
	if s.Err != nil {
		a.println("Refresh failed, run 'login' to sign in again")
	}
	return nil
}
