// Package fetch implements a resilient HTTP client: one logical request
// is bounded by a timeout, retried a fixed number of times, and every
// failure mode collapses into a single normalized error.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kochabx/newswire/errors"
)

const (
	// DefaultTimeout bounds one logical call, shared across its attempts.
	DefaultTimeout = 10 * time.Second

	// DefaultAttempts is the total number of tries: the initial attempt
	// plus up to two retries.
	DefaultAttempts = 3
)

// Client performs HTTP requests against a fixed base address with
// bounded retry and timeout. It carries no per-call state, so a single
// Client is safe for concurrent use.
type Client struct {
	base     string
	timeout  time.Duration
	attempts int
	client   *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the per-call timeout covering all attempts.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithAttempts sets the total number of attempts per call.
func WithAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithHTTPClient sets a custom underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// New creates a client bound to the given base address. The base
// address is supplied here, not read from process-wide state, so tests
// can point the client anywhere.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base:     strings.TrimRight(base, "/"),
		timeout:  DefaultTimeout,
		attempts: DefaultAttempts,
		client:   &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do performs one logical request: validate, then try up to the attempt
// ceiling sequentially, keeping the last failure. The first attempt
// that returns a 2xx status short-circuits; its body is decoded into
// the WithResponse target when one is set.
//
// Validation failures and exhaustion report the same error kind; the
// stage that failed is only visible in the message.
func (c *Client) Do(method, path string, body any, opts ...RequestOption) error {
	opt := newRequestOptions(opts)

	// The deadline is armed before validation and released on every
	// exit path.
	ctx, cancel := context.WithTimeout(opt.ctx, c.timeout)
	defer cancel()

	if path == "" {
		return errors.BadRequest("request failed: endpoint path is empty")
	}

	payload, err := encodeBody(body)
	if err != nil {
		return errors.BadRequest("request failed: %v", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if err := c.try(ctx, method, path, payload, opt); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return errors.BadRequest("request failed: %v", lastErr)
}

// try performs a single attempt. Any failure - transport error, aborted
// deadline, non-2xx status, or an undecodable body - fails the attempt.
func (c *Client) try(ctx context.Context, method, path string, payload []byte, opt *requestOptions) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opt.header {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused by the next attempt.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if opt.response == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(opt.response)
}

// encodeBody serializes the request body once, so that every attempt
// replays identical bytes.
func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case io.Reader:
		return io.ReadAll(v)
	default:
		return json.Marshal(v)
	}
}

// Convenience methods for common HTTP operations

// Get performs a GET request.
func (c *Client) Get(path string, opts ...RequestOption) error {
	return c.Do(http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(path string, body any, opts ...RequestOption) error {
	return c.Do(http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(path string, body any, opts ...RequestOption) error {
	return c.Do(http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(path string, opts ...RequestOption) error {
	return c.Do(http.MethodDelete, path, nil, opts...)
}
