// Package zoomapi is the single authenticated gateway to the Zoom REST API.
//
// Every request passes two hooks: a pre-send hook that attaches a bearer
// token from the TokenSource, and a post-receive hook that logs failed
// exchanges and passes them on unchanged. Outcomes are returned as a Result
// rather than an error so callers handle success and failure explicitly.
package zoomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Zoom REST API v2 root.
const DefaultBaseURL = "https://api.zoom.us/v2"

// maxResponseBody bounds the size of a buffered API response.
const maxResponseBody = 32 << 20

// Request describes one call against the API. Path is relative to the base URL
// and must already be escaped.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Result is the outcome of a request: exactly one of Body or Err is meaningful.
// StatusCode is zero when no response was received.
type Result struct {
	StatusCode int
	Body       json.RawMessage
	Err        error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Option configures a Client.
type Option func(*config)

type config struct {
	baseURL   string
	transport http.RoundTripper
	timeout   time.Duration
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTransport sets the base transport beneath the auth and logging hooks.
// If not provided, http.DefaultTransport is used.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *config) {
		c.transport = transport
	}
}

// WithTimeout bounds each request including token acquisition, including
// waiting on a refresh started by another request. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// Client is a Zoom API client bound to one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client authorizing every request with tokens from ts.
func New(ts TokenSource, opts ...Option) (*Client, error) {
	if ts == nil {
		return nil, fmt.Errorf("missing token source")
	}

	cfg := &config{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", cfg.baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		httpClient: &http.Client{
			Timeout: cfg.timeout,
			Transport: &errorLogTransport{
				base: &authTransport{source: ts, base: cfg.transport},
			},
		},
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) Result {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) Result {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Query: query})
}

// Do executes req. Non-2xx responses yield an *APIError; transport and token
// failures are returned as reported by the HTTP client.
func (c *Client) Do(ctx context.Context, req Request) Result {
	ctx = withRequestID(ctx, uuid.NewString())

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return Result{Err: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return Result{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{StatusCode: resp.StatusCode, Err: newAPIError(resp.StatusCode, body)}
	}

	return Result{StatusCode: resp.StatusCode, Body: json.RawMessage(body)}
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(req.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", req.Path, err)
	}
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}
