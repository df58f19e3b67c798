package backend

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

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/metrics"
	"github.com/wb-go/wbf/retry"
)

const (
	DefaultTimeout = 120 * time.Second

	unauthorizedMessage = "unauthorized"
	maxBodySize         = 4 << 20
)

// Client talks to the booking/payment REST service. Every call shares a
// fixed timeout; idempotent reads are retried on transport failures and
// 5xx answers, mutations never are.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	strategy retry.Strategy
}

type Option func(*Client)

// WithCookieJar makes the client keep the session cookie between calls,
// which is what a single-user console needs.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) { c.http.Jar = jar }
}

func WithRetry(strategy retry.Strategy) Option {
	return func(c *Client) { c.strategy = strategy }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    300 * time.Millisecond,
			Backoff:  2,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type cookiesKey struct{}

// WithCookies attaches the caller's session cookies to ctx so that calls
// made on their behalf are authenticated as them.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

// CookiesFrom returns the cookies attached with WithCookies.
func CookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}

// APIError is a non-successful backend answer.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// Message returns the text the backend gave for err, or err itself.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    *bool           `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// nestedMessage digs out {"data":{"message":...}}, which /check uses
// for its failures.
func (e *envelope) nestedMessage() string {
	if e.Message != "" || len(e.Data) == 0 {
		return e.Message
	}
	var inner struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Data, &inner); err != nil {
		return ""
	}
	return inner.Message
}

type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
	out      any
	retry    bool
}

type result struct {
	message string
	cookies []*http.Cookie
}

func (c *Client) do(ctx context.Context, cl call) (*result, error) {
	if !cl.retry {
		return c.once(ctx, cl)
	}

	var (
		res       *result
		permanent error
	)
	err := retry.Do(func() error {
		var err error
		res, err = c.once(ctx, cl)
		if err != nil && !transient(ctx, err) {
			permanent = err
			return nil
		}
		return err
	}, c.strategy)
	if permanent != nil {
		return nil, permanent
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func transient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

func (c *Client) once(ctx context.Context, cl call) (*result, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveBackend(cl.endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("%s: %w: %w", cl.endpoint, domain.ErrBackend, err)
	}
	defer resp.Body.Close()
	metrics.ObserveBackend(cl.endpoint, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w: %w", cl.endpoint, domain.ErrBackend, err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err = json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return nil, fmt.Errorf("%s: decode envelope: %w: %w", cl.endpoint, domain.ErrBackend, err)
		}
	}

	if apiErr := classify(cl.endpoint, resp.StatusCode, &env); apiErr != nil {
		return nil, apiErr
	}

	if cl.out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err = json.Unmarshal(env.Data, cl.out); err != nil {
			return nil, fmt.Errorf("%s: decode data: %w: %w", cl.endpoint, domain.ErrBackend, err)
		}
	}

	return &result{message: env.Message, cookies: resp.Cookies()}, nil
}

func classify(endpoint string, status int, env *envelope) *APIError {
	msg := env.nestedMessage()
	switch {
	case status == http.StatusUnauthorized,
		strings.Contains(strings.ToLower(msg), unauthorizedMessage):
		return &APIError{Endpoint: endpoint, Status: status, Message: msg, Err: domain.ErrUnauthorized}
	case status == http.StatusNotFound:
		return &APIError{Endpoint: endpoint, Status: status, Message: msg, Err: domain.ErrNotFound}
	case status >= http.StatusBadRequest:
		return &APIError{Endpoint: endpoint, Status: status, Message: msg, Err: domain.ErrBackend}
	case env.Success != nil && !*env.Success:
		return &APIError{Endpoint: endpoint, Status: status, Message: msg, Err: domain.ErrBackend}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u := c.baseURL.JoinPath(cl.path)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", cl.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", cl.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range CookiesFrom(ctx) {
		req.AddCookie(cookie)
	}

	return req, nil
}
