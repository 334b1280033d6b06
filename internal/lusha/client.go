// Package lusha is the HTTP client for the Lusha contact-data API: person
// and company lookups plus the signals search endpoints. It owns transport
// concerns only (rate limiting, headers, timeouts); status classification
// lives in the enrich package.
package lusha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.lusha.com"

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

type Client struct {
	baseURL string
	hc      *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// Response is the raw upstream reply; Err-free means transport succeeded,
// not that the lookup did.
type Response struct {
	Status int
	Body   []byte
}

func New(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 4
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     log,
	}
}

// Person looks up a contact: GET /v2/person?firstName&lastName&companyName|companyDomain.
func (c *Client) Person(ctx context.Context, apiKey string, params url.Values) (*Response, error) {
	return c.get(ctx, apiKey, "/v2/person", params)
}

// Company looks up a company: GET /v2/company?company|domain.
func (c *Client) Company(ctx context.Context, apiKey string, params url.Values) (*Response, error) {
	return c.get(ctx, apiKey, "/v2/company", params)
}

// ContactSignals searches buying-intent signals for contacts.
func (c *Client) ContactSignals(ctx context.Context, apiKey string, body any) (*Response, error) {
	return c.post(ctx, apiKey, "/api/signals/contacts/search", body)
}

// CompanySignals searches buying-intent signals for companies.
func (c *Client) CompanySignals(ctx context.Context, apiKey string, body any) (*Response, error) {
	return c.post(ctx, apiKey, "/api/signals/companies/search", body)
}

func (c *Client) get(ctx context.Context, apiKey, path string, params url.Values) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api_key", apiKey)

	c.log.Debug("lusha request", zap.String("path", path), zap.String("key", KeyPrefix(apiKey)))
	return c.do(req, path)
}

func (c *Client) post(ctx context.Context, apiKey, path string, body any) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("lusha encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api_key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("lusha request", zap.String("path", path), zap.String("key", KeyPrefix(apiKey)))
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) (*Response, error) {
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lusha %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("lusha %s read body: %w", path, err)
	}

	c.log.Debug("lusha response", zap.String("path", path), zap.Int("status", res.StatusCode))
	return &Response{Status: res.StatusCode, Body: body}, nil
}

// KeyPrefix is the only form of the API key that may appear in diagnostics.
func KeyPrefix(apiKey string) string {
	if len(apiKey) > 8 {
		apiKey = apiKey[:8]
	}
	return apiKey + "..."
}
