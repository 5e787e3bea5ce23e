package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lfarma.app/storefront-web/internal/cache"
)

const (
	defaultTimeout  = 8 * time.Second
	catalogCacheKey = "lfarma:catalogo"
)

// ErrUserUnavailable covers every way the current-user lookup can fail short
// of a transport bug: non-success status, empty payload, missing username.
// Callers fall back to the default display name.
var ErrUserUnavailable = errors.New("catalog: current user unavailable")

// Client fetches the product catalog and the signed-in user from the backend.
// When baseURL is empty, the client serves a built-in demo dataset so the
// storefront runs without a backend.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    *cache.Client
	cacheTTL time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// UseCache memoizes catalog payloads in Redis for ttl. A nil cache client
// disables memoization.
func (c *Client) UseCache(cc *cache.Client, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.cache = cc
	c.cacheTTL = ttl
}

// FetchProducts returns the full catalog. The visitor token, when present, is
// forwarded as a bearer credential. A non-success status is an error; there is
// no retry; a failed fetch is terminal for the request that triggered it.
func (c *Client) FetchProducts(ctx context.Context, token string) ([]Product, error) {
	if c == nil || c.baseURL == "" {
		return demoProducts(), nil
	}

	if raw, err := c.cache.Get(ctx, catalogCacheKey); err == nil {
		var cached []Product
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	endpoint, err := url.JoinPath(c.baseURL, "productos", "api")
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog: productos status %d: %s", resp.StatusCode, drainError(resp.Body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode productos: %w", err)
	}

	// best effort; a cold cache just means another backend round trip
	_ = c.cache.Set(ctx, catalogCacheKey, raw, c.cacheTTL)

	return products, nil
}

// FetchCurrentUser resolves the signed-in visitor's display name. Any failure
// mode collapses to ErrUserUnavailable so callers apply the default label.
func (c *Client) FetchCurrentUser(ctx context.Context, token string) (string, error) {
	if c == nil || c.baseURL == "" {
		return "Cliente", nil
	}

	endpoint, err := url.JoinPath(c.baseURL, "api", "usuario-actual")
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUserUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUserUnavailable, resp.StatusCode)
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUserUnavailable, err)
	}
	name := strings.TrimSpace(payload.Username)
	if name == "" {
		return "", ErrUserUnavailable
	}
	return name, nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
