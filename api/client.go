package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/paycanvas/console/session"
)

const (
	// authPathPrefix marks the endpoints that never trigger a silent refresh.
	authPathPrefix = "/api/auth/"

	// RouteAuthLogin and RouteAuthRefresh are the authentication endpoints.
	RouteAuthLogin   = "/api/auth/login"
	RouteAuthRefresh = "/api/auth/refresh"

	defaultTimeout = 30 * time.Second

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 10 * 1024 * 1024
)

// newHTTPClient builds the shared transport: pooled connections plus a cookie
// jar so backend session cookies ride along with the bearer token.
func newHTTPClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Jar:     jar,
		Timeout: defaultTimeout,
	}
}

// Client performs all outbound API calls. The access token is read fresh from
// the credential store at call time, never held.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	store         *session.Store
	bus           *session.Bus
	onInvalidated func()
}

// Option modifies a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithInvalidatedHook registers the callback fired when a session becomes
// unrecoverable (a 401 that survives the refresh attempt). The application
// shell uses it to navigate back to the login screen; the client itself never
// touches navigation.
func WithInvalidatedHook(fn func()) Option {
	return func(c *Client) {
		c.onInvalidated = fn
	}
}

// New creates a Client against the given backend origin.
func New(baseURL string, store *session.Store, bus *session.Bus, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[api.New] baseURL is required")
	}
	if store == nil {
		return nil, errors.New("[api.New] credential store is required")
	}
	if bus == nil {
		return nil, errors.New("[api.New] session bus is required")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newHTTPClient(),
		store:      store,
		bus:        bus,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodGet, path, nil, out, true)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, body, out, true)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPut, path, body, out, true)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPatch, path, body, out, true)
}

// Delete issues a DELETE request. The response body is ignored.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.request(ctx, http.MethodDelete, path, nil, nil, true)
}

// request performs one call. retry is true only on the first attempt: a 401
// triggers at most one silent refresh followed by one retried request, so no
// retry loop is possible.
func (c *Client) request(ctx context.Context, method, path string, body, out any, retry bool) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.request] encode body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), payload)
	if err != nil {
		return errors.Wrap(err, "[Client.request] build request")
	}
	if token := c.store.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.request] %s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.Wrapf(err, "[Client.request] read response for %s %s", method, path)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if method == http.MethodDelete || resp.StatusCode == http.StatusNoContent || len(data) == 0 || out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "[Client.request] decode response for %s %s", method, path)
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized && retry && !isAuthPath(path) {
		if c.refreshAccessToken(ctx) {
			return c.request(ctx, method, path, body, out, false)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.store.Clear()
		c.bus.Publish(session.Default())
		// Auth endpoints report their 401 to the caller directly; only
		// data requests force a return to the login screen.
		if !isAuthPath(path) && c.onInvalidated != nil {
			c.onInvalidated()
		}
	}

	return &RequestError{Status: resp.StatusCode, Body: string(data)}
}

// refreshAccessToken exchanges the stored refresh token for a new token pair.
// On success the new session is persisted and published; on failure nothing
// is mutated.
func (c *Client) refreshAccessToken(ctx context.Context) bool {
	refreshToken := c.store.RefreshToken()
	if refreshToken == "" {
		return false
	}

	data, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return false
	}

	// The expired access token is deliberately not attached here.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(RouteAuthRefresh), bytes.NewReader(data))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("token refresh request failed")
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug().Int("status", resp.StatusCode).Msg("token refresh rejected")
		return false
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&loginResp); err != nil {
		return false
	}
	sess, err := loginResp.Session()
	if err != nil {
		return false
	}

	c.store.Save(sess)
	c.bus.Publish(sess)
	log.Debug().Msg("access token refreshed")
	return true
}

// resolve turns a backend path into an absolute URL; already-absolute URLs
// pass through untouched.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return c.baseURL + path
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, authPathPrefix)
}
