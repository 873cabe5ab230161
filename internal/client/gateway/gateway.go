// Package gateway is the sole outbound HTTP boundary of the client. It
// attaches the bearer credential to every request, normalizes all failures
// into one error shape, and owns the 401 session-expiry side effect: clear
// the credential, notify subscribers, fail the call with ErrSessionExpired.
// The gateway knows nothing about navigation; a top-level coordinator
// subscribes and moves the UI back to the login view.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/econdash/internal/client/credentials"
	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/logging"
	"github.com/google/uuid"
)

const DefaultTimeout = 30 * time.Second

type Gateway struct {
	baseURL string
	client  *http.Client
	creds   credentials.Store
	log     logging.Logger
	timeout time.Duration

	mu   sync.Mutex
	subs []func()
}

type Option func(*Gateway)

// WithTimeout overrides the fixed per-request ceiling.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithHTTPClient substitutes the underlying client (tests).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

func New(baseURL string, creds credentials.Store, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		creds:   creds,
		log:     log,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OnSessionExpired registers fn to run once per credential generation when
// any in-flight request observes a 401.
func (g *Gateway) OnSessionExpired(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, fn)
}

// Do performs one API call. body (optional) is JSON-encoded; a 2xx response
// is decoded into out when out is non-nil. Every failure is returned as
// *Error; an absent credential is not an error at this layer, so login and
// register pass through unauthenticated.
func (g *Gateway) Do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	token, err := g.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			g.log.Warn(ctx, "request timed out", "method", method, "path", path)
			return &Error{Kind: ErrTimeout, Message: "request timed out"}
		}
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{Kind: ErrUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: ErrUnavailable, Message: "read response: " + err.Error(), Status: resp.StatusCode}
	}

	g.log.Debug(ctx, "request complete",
		"method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		g.expireSession(ctx)
		return &Error{
			Kind:    ErrSessionExpired,
			Message: errMessage(raw, "session expired"),
			Status:  resp.StatusCode,
			RawBody: string(raw),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errMessage(raw, resp.Status)
		kind := ErrHTTP
		if resp.StatusCode == http.StatusNotFound || isNotFoundMessage(msg) {
			kind = ErrNotFound
		}
		return &Error{Kind: kind, Message: msg, Status: resp.StatusCode, RawBody: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{
				Kind:    ErrInvalidResponse,
				Message: "decode response: " + err.Error(),
				Status:  resp.StatusCode,
				RawBody: string(raw),
			}
		}
	}
	return nil
}

// expireSession clears the stored credential and notifies subscribers.
// Clearing an absent credential is a no-op and emits nothing, so concurrent
// in-flight 401s collapse to one reset per credential generation.
func (g *Gateway) expireSession(ctx context.Context) {
	g.mu.Lock()
	token, err := g.creds.Get(ctx)
	if err != nil || token == "" {
		g.mu.Unlock()
		return
	}
	if err := g.creds.Clear(ctx); err != nil {
		g.log.Error(ctx, "clear credential after 401", "error", err)
	}
	subs := make([]func(), len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	g.log.Warn(ctx, "session expired, credential cleared")
	for _, fn := range subs {
		fn()
	}
}

// errMessage extracts the server's error detail ({"detail": "..."}) or
// falls back to the given default.
func errMessage(raw []byte, fallback string) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return fallback
}

func isNotFoundMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "not found")
}
