// Package httpclient provides the shared, preconfigured HTTP client used to reach
// the graph API. A Client carries a base URL and a fixed per-request timeout and
// nothing else: no default headers, interceptors, or retries.
package httpclient

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
)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Client issues requests relative to a base URL with a fixed timeout.
type Client struct {
	http    *http.Client
	baseURL *url.URL
	timeout time.Duration
}

// New builds a Client from a finalized configuration.
// The configuration is expected to have passed Finalize; an unparsable base URL yields an empty one.
func New(cfg *Config) *Client {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		base = &url.URL{}
	}

	timeout := cfg.TimeoutDuration()

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: base,
		timeout: timeout,
	}
}

// BaseURL returns a copy of the configured base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Timeout returns the timeout applied to every request.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Resolve joins path onto the base URL, preserving any base path prefix.
// path may carry percent-escaped segments, such as an id escaped with
// url.PathEscape; they are sent as given rather than escaped again.
func (c *Client) Resolve(path string, query url.Values) string {
	u := c.BaseURL()
	escaped := strings.TrimSuffix(u.EscapedPath(), "/") + "/" + strings.TrimPrefix(path, "/")
	if unescaped, err := url.PathUnescape(escaped); err == nil {
		u.Path = unescaped
		u.RawPath = escaped
	} else {
		u.Path = escaped
		u.RawPath = ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends req through the shared http.Client.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.http.Do(req.WithContext(ctx))
}

// GetJSON issues a GET for path and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Resolve(path, query), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.send(ctx, req, out)
}

// PostJSON encodes body as JSON, POSTs it to path, and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Resolve(path, nil), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(ctx, req, out)
}

func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
