package tokensource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/florianilch/zoom-mcp/internal/credentials"
)

// ErrTokenFetchFailed is matched by every error returned when the token
// endpoint rejects the request or cannot be reached.
var ErrTokenFetchFailed = errors.New("token fetch failed")

// FetchError describes a failed token request.
// Err is an *oauth2.RetrieveError when the endpoint answered with a non-2xx status.
type FetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("fetching access token: status %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("fetching access token: status %d", e.StatusCode)
	}
	return fmt.Sprintf("fetching access token: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrTokenFetchFailed as a match.
func (e *FetchError) Is(target error) bool { return target == ErrTokenFetchFailed }

// ServerMessage returns the message supplied by the token endpoint, if any.
func (e *FetchError) ServerMessage() string { return e.Message }

// Option configures a Manager.
type Option func(*Manager)

// WithTokenURL overrides the OAuth token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(m *Manager) {
		m.tokenURL = tokenURL
	}
}

// WithHTTPClient sets the client used for token requests.
// If not provided, a client with a 30s timeout is used.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		m.httpClient = client
	}
}

// WithClock replaces time.Now, used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager caches one access token and refreshes it on demand.
type Manager struct {
	store      credentials.Store
	tokenURL   string
	httpClient *http.Client
	now        func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time

	refresh singleflight.Group
}

// Compile-time check to ensure Manager implements oauth2.TokenSource
var _ oauth2.TokenSource = (*Manager)(nil)

// NewManager creates a Manager reading credentials from store on every fetch.
// No I/O is performed until the first token is requested.
func NewManager(store credentials.Store, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		tokenURL: TokenURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidToken returns a cached token if it has not reached its buffered expiry,
// otherwise fetches a new one. Failed fetches leave the cache untouched.
func (m *Manager) ValidToken(ctx context.Context) (string, error) {
	tok, err := m.validToken(ctx)
	if err != nil {
		return "", err
	}
	return tok.token, nil
}

// Token implements oauth2.TokenSource.
func (m *Manager) Token() (*oauth2.Token, error) {
	return m.TokenContext(context.Background())
}

// TokenContext is Token bound to ctx. The returned Expiry is when the token
// stops being handed out, not Zoom's own expiry.
func (m *Manager) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	tok, err := m.validToken(ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: tok.token,
		TokenType:   "Bearer",
		Expiry:      tok.expiry,
	}, nil
}

// issuedToken is an access token with the moment it stops being handed out.
type issuedToken struct {
	token  string
	expiry time.Time
}

func (m *Manager) validToken(ctx context.Context) (issuedToken, error) {
	if tok, ok := m.cached(); ok {
		return tok, nil
	}

	// Callers arriving during a refresh wait for it instead of issuing their own,
	// but each stops waiting when its own context ends.
	// The fetch is detached from any single caller's cancellation since its result is shared.
	fetchCtx := context.WithoutCancel(ctx)
	ch := m.refresh.DoChan("token", func() (any, error) {
		if tok, ok := m.cached(); ok {
			return tok, nil
		}
		return m.fetch(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return issuedToken{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return issuedToken{}, res.Err
		}
		return res.Val.(issuedToken), nil
	}
}

// Expiry returns the buffered expiry of the cached token, zero if none.
func (m *Manager) Expiry() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiry
}

func (m *Manager) cached() (issuedToken, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != "" && m.expiry.After(m.now()) {
		return issuedToken{token: m.token, expiry: m.expiry}, true
	}
	return issuedToken{}, false
}

// tokenResponse is the JSON response from Zoom's token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// errorResponse covers both Zoom's OAuth error shape and its API error shape.
type errorResponse struct {
	Reason           string `json:"reason"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

func (m *Manager) fetch(ctx context.Context) (issuedToken, error) {
	creds, err := m.store.Read(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "reading Zoom credentials failed", "error", err)
		return issuedToken{}, err
	}

	endpoint, err := url.Parse(m.tokenURL)
	if err != nil {
		return issuedToken{}, fmt.Errorf("invalid token URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("grant_type", GrantType)
	query.Set("account_id", creds.AccountID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return issuedToken{}, fmt.Errorf("creating token request: %w", err)
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "getting access token failed", "error", err)
		return issuedToken{}, &FetchError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		slog.ErrorContext(ctx, "reading token response failed", "error", err)
		return issuedToken{}, &FetchError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		fetchErr := &FetchError{
			StatusCode: resp.StatusCode,
			Message:    firstNonEmpty(errResp.Message, errResp.Reason, errResp.ErrorDescription),
			Err: &oauth2.RetrieveError{
				Response:         resp,
				Body:             body,
				ErrorCode:        errResp.Error,
				ErrorDescription: firstNonEmpty(errResp.ErrorDescription, errResp.Reason),
			},
		}
		slog.ErrorContext(ctx, "getting access token failed",
			"status", resp.StatusCode,
			"response", logBody(body),
		)
		return issuedToken{}, fetchErr
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		slog.ErrorContext(ctx, "decoding token response failed", "error", err)
		return issuedToken{}, &FetchError{StatusCode: resp.StatusCode, Message: "malformed token response", Err: err}
	}
	if tokenResp.AccessToken == "" {
		slog.ErrorContext(ctx, "token response has no access_token")
		return issuedToken{}, &FetchError{StatusCode: resp.StatusCode, Message: "token response has no access_token", Err: errors.New("empty access_token")}
	}

	if tokenResp.ExpiresIn <= 0 {
		slog.ErrorContext(ctx, "token response has no expires_in")
		return issuedToken{}, &FetchError{StatusCode: resp.StatusCode, Message: "token response has no expires_in", Err: errors.New("missing expires_in")}
	}

	now := m.now()
	lifetime := time.Duration(tokenResp.ExpiresIn) * time.Second
	if lifetime <= ExpiryBuffer {
		// Too short-lived to survive the buffer: hand it to this caller only.
		slog.WarnContext(ctx, "access token lifetime shorter than expiry buffer, not caching",
			"expires_in", tokenResp.ExpiresIn,
		)
		return issuedToken{token: tokenResp.AccessToken, expiry: now.Add(lifetime)}, nil
	}

	expiry := now.Add(lifetime - ExpiryBuffer)

	m.mu.Lock()
	m.token = tokenResp.AccessToken
	m.expiry = expiry
	m.mu.Unlock()

	slog.DebugContext(ctx, "access token refreshed", "expires_at", expiry)
	return issuedToken{token: tokenResp.AccessToken, expiry: expiry}, nil
}

// logBody keeps structured JSON bodies structured in log output.
func logBody(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
