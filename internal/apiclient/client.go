// Package apiclient talks to the Workly resource API. Every call is
// authenticated with the caller's bearer token and mapped onto the
// apperror taxonomy. Nothing is cached here.
package apiclient

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

	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker BreakerConfig
	// HTTPClient overrides the default transport, mostly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenSource
	breaker    *CircuitBreaker
	logger     *zap.Logger
}

func New(cfg Config, tokens session.TokenSource, logger ...*zap.Logger) *Client {
	l := zap.L().Named("apiclient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("apiclient")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		breaker:    NewCircuitBreaker(cfg.Breaker),
		logger:     l,
	}
}

func (c *Client) BreakerState() BreakerState {
	return c.breaker.State()
}

// Do sends one request. body is JSON encoded when non-nil; out is decoded
// from a 2xx response when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal %s %s: %w", method, path, err)
		}
	}

	log := contextutil.GetLogger(ctx, c.logger).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	var result error
	err = c.breaker.Execute(func() error {
		result = c.send(ctx, method, path, token, payload, out)
		if result != nil && ctx.Err() != nil {
			return errAbandoned
		}
		if countsAsFailure(result) {
			return result
		}
		return nil
	})
	if errors.Is(err, ErrCircuitOpen) {
		log.Warn("api call short-circuited", zap.String("breaker", BreakerOpen.String()))
		return networkError(err)
	}
	if errors.Is(err, errAbandoned) {
		log.Debug("api call abandoned by caller", zap.Error(ctx.Err()))
		return ctx.Err()
	}

	if result != nil {
		log.Debug("api call failed", zap.Error(result))
		return result
	}
	log.Debug("api call ok")
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrServer.WithDetail("", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Resource exposes the CRUD contract shared by every resource kind.
type Resource[T any] struct {
	client *Client
	base   string
}

func NewResource[T any](client *Client, base string) Resource[T] {
	return Resource[T]{client: client, base: strings.TrimRight(base, "/")}
}

func (r Resource[T]) Path(parts ...string) string {
	var b strings.Builder
	b.WriteString(r.base)
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}

func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := r.client.Do(ctx, http.MethodGet, r.base, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodGet, r.Path(id), nil, &out)
	return out, err
}

// GetAt reads one resource from a lookup endpoint other than /:id.
func (r Resource[T]) GetAt(ctx context.Context, path string) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (r Resource[T]) Create(ctx context.Context, body any) (T, error) {
	return r.CreateAt(ctx, r.base, body)
}

// CreateAt posts to an alternative creation endpoint of the resource.
func (r Resource[T]) CreateAt(ctx context.Context, path string, body any) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPost, path, body, &out)
	return out, err
}

func (r Resource[T]) Update(ctx context.Context, id string, body any) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPut, r.Path(id), body, &out)
	return out, err
}

func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.Path(id), nil, nil)
}

func (r Resource[T]) Restore(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodPatch, r.Path(id, "restore"), nil, nil)
}
