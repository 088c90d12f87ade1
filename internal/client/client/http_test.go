package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
	"github.com/dmitrijs2005/hradmin/internal/common"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) AccessToken(context.Context) (string, error) { return s.token, s.err }

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   string
}

// newServer starts a backend that records the last request and answers with
// status and body.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	last := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*last = captured{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, header: r.Header.Clone(), body: string(b)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, last
}

func newClient(t *testing.T, url string, opts ...Option) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(url, append([]Option{WithRetry(1, time.Millisecond)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadEndpoint(t *testing.T) {
	_, err := NewHTTPClient("3.39.247.194")
	assert.Error(t, err)
	_, err = NewHTTPClient("ftp://host")
	assert.Error(t, err)

	c, err := NewHTTPClient("http://3.39.247.194/")
	require.NoError(t, err)
	assert.Equal(t, "http://3.39.247.194", c.baseURL)
}

func TestLogin(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":200,"message":"ok","data":{"accessToken":"A","refreshToken":"R"}}`)
	c := newClient(t, srv.URL, WithTokenSource(staticTokens{token: "must-not-be-sent"}))

	res, err := c.Login(context.Background(), "admin@example.com", "cGINOjR+tRVE9JT2++8ayQ==")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/api/v1/auth/login", last.path)
	assert.JSONEq(t, `{"email":"admin@example.com","password":"cGINOjR+tRVE9JT2++8ayQ=="}`, last.body)
	assert.Empty(t, last.header.Get(common.AuthorizationHeaderName))
	assert.Equal(t, "application/json", last.header.Get("Content-Type"))

	assert.True(t, res.Code.IsOK())
	assert.True(t, res.Code.Numeric)
	assert.Equal(t, "A", res.AccessToken)
	assert.Equal(t, "R", res.RefreshToken)
}

func TestRefresh(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":"200","data":{"accessToken":"A2"}}`)
	c := newClient(t, srv.URL)

	tok, err := c.Refresh(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, "A2", tok)
	assert.Equal(t, "/refresh", last.path)
	assert.JSONEq(t, `{"refreshToken":"R1"}`, last.body)
}

func TestRefresh_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "unauthorized", status: 401, body: `{"code":"401","message":"expired"}`, want: ErrUnauthorized},
		{name: "missing token", status: 200, body: `{"code":"200","data":{}}`, want: ErrUnexpectedResponse},
		{name: "null data", status: 200, body: `{"code":"200","data":null}`, want: ErrUnexpectedResponse},
		{name: "empty body", status: 200, body: ``, want: ErrUnexpectedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			_, err := newClient(t, srv.URL).Refresh(context.Background(), "R1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":"200","data":[]}`)

	c := newClient(t, srv.URL, WithTokenSource(staticTokens{token: "tok"}))
	_, err := c.ListAffiliations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", last.header.Get(common.AuthorizationHeaderName))
	assert.NotEmpty(t, last.header.Get(common.RequestIDHeaderName))

	c.SetTokenSource(staticTokens{err: common.ErrNotAuthenticated})
	_, err = c.ListAffiliations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, last.header.Get(common.AuthorizationHeaderName))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    error
		message string
	}{
		{name: "401", status: 401, body: `{"message":"token expired"}`, kind: ErrUnauthorized, message: "token expired"},
		{name: "403 keeps message", status: 403, body: `{"code":"403","message":"admin only"}`, kind: ErrForbidden, message: "admin only"},
		{name: "500 keeps message", status: 500, body: `{"message":"db down"}`, kind: ErrServer, message: "db down"},
		{name: "404", status: 404, body: `{"code":"404","message":"no contract"}`, message: "no contract"},
		{name: "non-json", status: 502, body: `<html>bad gateway</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			_, err := newClient(t, srv.URL).GetContract(context.Background(), 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url).ListWorkspaces(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetRetriesWhileUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = io.WriteString(w, `{"code":"200","data":[{"id":1,"name":"Camp A"}]}`)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, WithRetry(3, time.Millisecond))
	require.NoError(t, err)

	ws, err := c.ListWorkspaces(context.Background())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "Camp A", ws[0].Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPostIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		conn, _, _ := w.(http.Hijacker).Hijack()
		_ = conn.Close()
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, WithRetry(3, time.Millisecond))
	require.NoError(t, err)

	_, err = c.CreateWorkspace(context.Background(), models.WorkspaceRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestContracts(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":200,"status":"OK","data":{"totalCount":11,"totalPages":2,"currentPage":2,"resultList":[{"id":5,"name":"Kim","phoneNumber":"Kh9yO3F2t9OV78VgG+68CA==","createdAt":"2025-02-10T09:00:00"}]}}`)
	c := newClient(t, srv.URL)

	page, err := c.ListContracts(context.Background(), PageRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "/api/contracts", last.path)
	assert.Equal(t, "page=2&size=10", last.query)
	assert.Equal(t, 11, page.TotalCount)
	require.Len(t, page.ResultList, 1)
	assert.Equal(t, int64(5), page.ResultList[0].ID)

	srv2, last2 := newServer(t, 200, `{"code":"200","data":{"id":5}}`)
	c = newClient(t, srv2.URL)

	_, err = c.UpdateContract(context.Background(), 5, models.ContractRequest{Name: "Kim", PhoneNumber: "enc"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last2.method)
	assert.Equal(t, "/api/contracts/5", last2.path)

	require.NoError(t, c.DeleteContract(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, last2.method)
}

func TestUsersQuery(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":"200","data":[]}`)
	c := newClient(t, srv.URL)

	_, err := c.ListUsers(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/users", last.path)
	assert.Empty(t, last.query)

	_, err = c.ListUsers(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "workspaceId=12", last.query)
}

func TestSchedules(t *testing.T) {
	srv, last := newServer(t, 200, `{"code":"200","data":{"id":9,"status":"REJECTED"}}`)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	s, err := c.RejectSchedule(ctx, 9, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, s.Status)
	assert.Equal(t, "/api/admin/schedules/9/reject", last.path)
	assert.JSONEq(t, `{}`, last.body)

	_, err = c.RejectSchedule(ctx, 9, "overlaps")
	require.NoError(t, err)
	assert.JSONEq(t, `{"reason":"overlaps"}`, last.body)

	_, err = c.ApproveSchedule(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, "/api/admin/schedules/9/approve", last.path)
	assert.Empty(t, last.body)

	_, err = c.ListWorkspaceSchedules(ctx, 4)
	assert.Error(t, err)
	assert.Equal(t, "/api/admin/schedules/workspace/4", last.path)

	_, err = c.ListPendingSchedules(ctx, PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/schedules/pending", last.path)
	assert.Equal(t, "page=1&size=10", last.query)
}

func TestCode(t *testing.T) {
	var env struct {
		Code Code `json:"code"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"code":"200"}`), &env))
	assert.True(t, env.Code.IsOK())
	assert.False(t, env.Code.Numeric)

	require.NoError(t, json.Unmarshal([]byte(`{"code":200}`), &env))
	assert.True(t, env.Code.IsOK())
	assert.True(t, env.Code.Numeric)

	require.NoError(t, json.Unmarshal([]byte(`{"code":"401"}`), &env))
	assert.False(t, env.Code.IsOK())

	assert.Error(t, json.Unmarshal([]byte(`{"code":true}`), &env))

	b, err := json.Marshal(Code{Value: "200", Numeric: true})
	require.NoError(t, err)
	assert.Equal(t, "200", string(b))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 403, Message: "admin only", Kind: ErrForbidden}
	assert.Equal(t, "forbidden: admin only", err.Error())
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, "status 404", (&APIError{Status: 404}).Error())
}
