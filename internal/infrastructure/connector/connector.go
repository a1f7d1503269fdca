// Package connector wraps outbound HTTP calls to third-party JSON
// endpoints. Get and Post never fail: they log and return an Empty
// Result. GetDetailed and PostDetailed report the reason instead.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Observer interface {
	ObserveOutbound(method, outcome string, d time.Duration)
}

type Client struct {
	doer     Doer
	log      *slog.Logger
	strict   bool
	observer Observer
}

type Option func(*Client)

// WithStrict keeps the failure reason on Empty results.
func WithStrict(strict bool) Option {
	return func(c *Client) {
		c.strict = strict
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

func New(doer Doer, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		doer: doer,
		log:  log.With("component", "connector"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient returns a client with a pooled transport and the given
// overall timeout. Zero means no timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}
}

// Get sends a GET with params merged into the query of rawURL.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values, headers map[string]string) Result {
	return c.collapse(c.GetDetailed(ctx, rawURL, params, headers))
}

// Post sends body as is; set Content-Type through headers.
func (c *Client) Post(ctx context.Context, rawURL string, headers map[string]string, body []byte) Result {
	return c.collapse(c.PostDetailed(ctx, rawURL, headers, body))
}

func (c *Client) GetDetailed(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (any, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		c.log.Error("GET request failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: parse url: %v", ErrTransport, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return c.do(ctx, http.MethodGet, u.String(), headers, nil)
}

func (c *Client) PostDetailed(ctx context.Context, rawURL string, headers map[string]string, body []byte) (any, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	return c.do(ctx, http.MethodPost, rawURL, headers, r)
}

func (c *Client) do(ctx context.Context, method, rawURL string, headers map[string]string, body io.Reader) (v any, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveOutbound(method, outcome(err), time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		c.log.Error(method+" request failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	for k, val := range headers {
		req.Header.Set(k, val)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Error(method+" request failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(method+" request failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(method+" returned unexpected status",
			"url", rawURL,
			"status", resp.StatusCode,
			"body", string(raw),
		)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return decode(raw)
}

// decode treats a blank body, the literal body 0, null and false as no data.
func decode(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(raw) == "0" {
		return nil, ErrEmpty
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if v == nil || v == false {
		return nil, ErrEmpty
	}
	return v, nil
}

func (c *Client) collapse(v any, err error) Result {
	if err == nil {
		return decoded(v)
	}
	if c.strict {
		return Result{err: err}
	}
	return Result{}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrEmpty):
		return "empty"
	}
	return "transport"
}
