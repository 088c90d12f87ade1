package client

import (
	"context"
	"fmt"
	"net/http"
)

const (
	loginPath   = "/api/v1/auth/login"
	refreshPath = "/refresh"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair. The password must already
// be encrypted with the deployment field cipher. The envelope code is
// returned as is; callers decide whether it counts as success.
func (c *HTTPClient) Login(ctx context.Context, email, encryptedPassword string) (*LoginResult, error) {
	var env Response[*loginData]
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      loginPath,
		body:      loginRequest{Email: email, Password: encryptedPassword},
		anonymous: true,
	}, &env)
	if err != nil {
		return nil, err
	}

	res := &LoginResult{Code: env.Code, Message: env.Message}
	if env.Data != nil {
		res.AccessToken = env.Data.AccessToken
		res.RefreshToken = env.Data.RefreshToken
	}
	return res, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshData struct {
	AccessToken string `json:"accessToken"`
}

// Refresh exchanges a refresh token for a new access token. It satisfies
// session.Refresher. A 2xx response without an access token is an error.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	data, err := call[*refreshData](ctx, c, request{
		method:    http.MethodPost,
		path:      refreshPath,
		body:      refreshRequest{RefreshToken: refreshToken},
		anonymous: true,
	})
	if err != nil {
		return "", err
	}
	if data == nil || data.AccessToken == "" {
		return "", fmt.Errorf("%w: no access token in refresh response", ErrUnexpectedResponse)
	}
	return data.AccessToken, nil
}
