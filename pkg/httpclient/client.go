package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"marketplace-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Doer interface untuk abstraction HTTP boundary
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Client wrapper struct. Semua request bawa session cookie dari jar
// dan Content-Type JSON.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// serverError adalah shape error body dari server (Spring-style).
type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func New(config utils.APIConfig, log *zap.Logger) (*Client, error) {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url: %s", config.BaseURL)
	}

	// Cookie jar menyimpan session cookie dari server
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		base: base,
		// Tanpa timeout; request yang hang akan menggantung caller-nya.
		http: &http.Client{Jar: jar},
		log:  log.With(zap.String("component", "httpclient")),
	}, nil
}

// Get implements Doer
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post implements Doer
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put implements Doer
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete implements Doer
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// 1. Build URL dari base + path
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	// 2. Encode body jika ada
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// 3. Kirim request
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// 4. Observe 401/403: log saja, tanpa redirect (itu urusan route guard)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.log.Warn("Authentication required",
			zap.String("method", method),
			zap.String("path", path))
	case http.StatusForbidden:
		c.log.Warn("Access forbidden",
			zap.String("method", method),
			zap.String("path", path))
	}

	// 5. Non-2xx jadi APIError dengan message server bila ada
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp, path)
	}

	// 6. Decode response body
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Error("Failed to decode response",
				zap.Error(err),
				zap.String("method", method),
				zap.String("path", path))
			return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
		}
	}

	return nil
}

func (c *Client) apiError(resp *http.Response, path string) error {
	apiErr := &APIError{
		Status: resp.StatusCode,
		Path:   path,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		var body serverError
		if json.Unmarshal(raw, &body) == nil {
			if body.Message != "" {
				apiErr.Message = body.Message
			} else if body.Error != "" {
				apiErr.Message = body.Error
			}
		}
	}

	return apiErr
}
