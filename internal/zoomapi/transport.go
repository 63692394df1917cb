package zoomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenSource supplies a valid access token for every outbound request.
// Implementations log their own failures.
type TokenSource interface {
	ValidToken(ctx context.Context) (string, error)
}

// authTransport sets the bearer token on every request. There is no opt-out.
type authTransport struct {
	source TokenSource
	base   http.RoundTripper
}

// Compile-time check that authTransport implements http.RoundTripper.
var _ http.RoundTripper = (*authTransport)(nil)

// RoundTrip obtains a token and forwards a cloned request carrying it.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.source.ValidToken(req.Context())
	if err != nil {
		// RoundTripper contract: the body must be closed even on early errors.
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, &tokenError{err: err}
	}

	newReq := req.Clone(req.Context())
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(newReq)

	return t.base.RoundTrip(newReq)
}

// tokenError marks a failure to obtain a token. The token source has
// already logged it.
type tokenError struct {
	err error
}

func (e *tokenError) Error() string { return e.err.Error() }
func (e *tokenError) Unwrap() error { return e.err }

// errorLogTransport logs every failed exchange once and passes it on unchanged.
type errorLogTransport struct {
	base http.RoundTripper
}

// Compile-time check that errorLogTransport implements http.RoundTripper.
var _ http.RoundTripper = (*errorLogTransport)(nil)

// maxLoggedBody bounds how much of an error body is buffered for logging.
const maxLoggedBody = 64 << 10

// RoundTrip logs transport errors and non-2xx responses.
// Error bodies are buffered and restored so callers can still read them.
func (t *errorLogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		var tokenErr *tokenError
		if errors.As(err, &tokenErr) {
			return nil, err
		}
		slog.ErrorContext(ctx, "Zoom API request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", requestIDFrom(ctx),
			"error", err,
		)
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	rest := resp.Body
	resp.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(body), rest), rest}

	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestIDFrom(ctx),
	}
	if readErr == nil && len(body) > 0 {
		attrs = append(attrs, "response", logBody(body))
	} else if readErr != nil {
		attrs = append(attrs, "error", readErr)
	} else {
		attrs = append(attrs, "error", resp.Status)
	}
	slog.ErrorContext(ctx, "Zoom API error response", attrs...)

	return resp, nil
}

// logBody keeps structured JSON bodies structured in log output.
func logBody(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
