package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"turak/internal/domain"
)

// publicPaths are the auth endpoints that must never carry a bearer token,
// even when one is stored. Matched by substring, same as the original
// front-end interceptor.
var publicPaths = []string{
	"/register/",
	"/login/",
	"/forgot-password/",
	"/reset-password/",
	"/verify-email/",
	"/confirm-email/",
	"/resend-code/",
}

// Client issues JSON requests against the marketplace backend.
//
// The token source is consulted on every outgoing request; there is no
// caching, no retry and no request deduplication. Non-2xx responses come
// back as *Error with the server's message when it provides one.
type Client struct {
	base    string
	http    *http.Client
	tokens  domain.TokenSource
	limiter *rate.Limiter
}

// Option tweaks a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the transport, e.g. with an httptest client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit throttles outgoing requests to rps per second. Zero or
// negative disables throttling.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// New returns a Client for the given origin. tokens supplies the bearer
// token and may be nil for a purely anonymous client.
func New(base string, tokens domain.TokenSource, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   http.DefaultClient,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, err := encode(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, "application/json", out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, err := encode(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, "application/json", out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PutMultipart sends fields, and optionally one file part, as a multipart
// form. Used for profile updates carrying an avatar.
func (c *Client) PutMultipart(
	ctx context.Context,
	path string,
	fields map[string]string,
	fileField, fileName string,
	file io.Reader,
	out any,
) error {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, buf, mw.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Durable storage is read on every request; only the enumerated public
	// auth endpoints go out bare.
	if c.tokens != nil && !isPublic(path) {
		if token, ok := c.tokens.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return newError(resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode: %w", method, path, err)
		}
	}
	return nil
}

func encode(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	return buf, nil
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

var _ domain.APIClient = (*Client)(nil)
