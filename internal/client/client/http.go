package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/logging"
)

const (
	DefaultTimeout = 15 * time.Second

	defaultRetryAttempts = 3
	retryBaseDelay       = 200 * time.Millisecond

	// responses larger than this are truncated and fail to decode
	maxResponseSize = 4 << 20
)

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	log       logging.Logger
	attempts  uint64
	retryBase time.Duration
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithRetry sets how many times a GET is attempted in total and the initial
// backoff delay. attempts < 1 is treated as 1.
func WithRetry(attempts int, base time.Duration) Option {
	return func(c *HTTPClient) {
		if attempts < 1 {
			attempts = 1
		}
		c.attempts = uint64(attempts)
		c.retryBase = base
	}
}

// NewHTTPClient returns a client for the API rooted at endpoint.
func NewHTTPClient(endpoint string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q: want http(s)://host", endpoint)
	}

	c := &HTTPClient{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       logging.NewNop(),
		attempts:  defaultRetryAttempts,
		retryBase: retryBaseDelay,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// SetTokenSource installs the token source after construction. The session
// manager needs the client as its refresher, so the two are wired in two
// steps.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous requests never consult the token source
	anonymous bool
}

// do sends r and decodes the body into out. GETs are retried while the
// server is unreachable.
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	if r.method != http.MethodGet || c.attempts <= 1 {
		return c.send(ctx, r, out)
	}

	b := retry.WithMaxRetries(c.attempts-1, retry.NewExponential(c.retryBase))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.send(ctx, r, out)
		if errors.Is(err, ErrUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *HTTPClient) send(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	c.authorize(ctx, req, r.anonymous)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn(ctx, "request failed", "method", r.method, "path", r.path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done",
		"method", r.method, "path", r.path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(ctx, resp.StatusCode, data, requestID)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty body", ErrUnexpectedResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// authorize attaches the bearer token. When the source has no usable token
// the request goes out without credentials and the server decides.
func (c *HTTPClient) authorize(ctx context.Context, req *http.Request, anonymous bool) {
	if anonymous || c.tokens == nil {
		return
	}
	tok, err := c.tokens.AccessToken(ctx)
	if err != nil || tok == "" {
		c.log.Debug(ctx, "sending request without credentials", "path", req.URL.Path, "reason", err)
		return
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
}

func (c *HTTPClient) apiError(ctx context.Context, status int, data []byte, requestID string) error {
	var env Response[json.RawMessage]
	_ = json.Unmarshal(data, &env)

	e := &APIError{
		Status:  status,
		Code:    env.Code.Value,
		Message: env.Message,
		Kind:    kindForStatus(status),
	}
	c.log.Warn(ctx, "request rejected", "status", status, "code", e.Code, "message", e.Message, "request_id", requestID)
	return e
}

// call decodes the envelope of r and returns its data.
func call[T any](ctx context.Context, c *HTTPClient, r request) (T, error) {
	var env Response[T]
	if err := c.do(ctx, r, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

func idPath(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
