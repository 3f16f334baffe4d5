// Package client talks to the puzzle site's per-day input endpoint.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"aochelper/internal/aocerr"
	"aochelper/internal/config"
	"aochelper/internal/session"
)

// maxInputSize bounds a single puzzle input.
const maxInputSize = 10 * 1024 * 1024

// Options configures a Client. Zero values fall back to config defaults and
// http.DefaultClient.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches raw puzzle inputs.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = config.DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid base_url: scheme and host required")
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		baseURL:   u.String(),
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
	}
	if c.userAgent == "" {
		c.userAgent = config.DefaultUserAgent
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	return c, nil
}

// InputURL returns the endpoint for year/day.
func (c *Client) InputURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)
}

// FetchInput issues one GET for the input of year/day, authenticated with
// the session cookie. Errors match the aocerr sentinels.
func (c *Client) FetchInput(ctx context.Context, year, day int, cred session.Credential) ([]byte, error) {
	if cred.IsZero() {
		return nil, aocerr.ErrMissingCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.InputURL(year, day), nil)
	if err != nil {
		return nil, &aocerr.FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/plain")
	req.AddCookie(&http.Cookie{Name: "session", Value: cred.Value()})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &aocerr.FetchError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize+1))
	if err != nil {
		return nil, &aocerr.FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if len(b) > maxInputSize {
			return nil, &aocerr.FetchError{StatusCode: resp.StatusCode, Err: errors.New("input exceeds size limit")}
		}
		if len(b) == 0 {
			return nil, &aocerr.FetchError{StatusCode: resp.StatusCode, Err: errors.New("empty input")}
		}
		return b, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %d day %d: site returned 404", aocerr.ErrPuzzleNotAvailable, year, day)
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", aocerr.ErrInvalidCredential, resp.StatusCode)
	default:
		return nil, &aocerr.FetchError{StatusCode: resp.StatusCode, Err: bodyMessage(b)}
	}
}

func bodyMessage(b []byte) error {
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		return nil
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return errors.New(msg)
}

// Authenticated binds a Client to the outcome of credential resolution so
// it can serve as a cache.Fetcher. A non-nil Err is returned on every fetch,
// which keeps a missing credential from mattering until the network is needed.
type Authenticated struct {
	Client *Client
	Cred   session.Credential
	Err    error
}

// FetchInput fetches with the bound credential.
func (a Authenticated) FetchInput(ctx context.Context, year, day int) ([]byte, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Client.FetchInput(ctx, year, day, a.Cred)
}
