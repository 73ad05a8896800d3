package vinted

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tdevries/vintedwatch/internal/metrics"
)

const (
	defaultBaseURL = "https://www.vinted.nl"
	catalogPath    = "/api/v2/catalog/items"
	defaultPerPage = 10

	// The catalog endpoint rejects non-browser clients.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// ErrUnexpectedPayload is returned when the catalog endpoint responds
// with a body that does not match the expected shape, typically because
// the upstream content format changed or a challenge page was served.
var ErrUnexpectedPayload = errors.New("unexpected catalog payload")

// CatalogClient implements Source against the public Vinted catalog API.
type CatalogClient struct {
	baseURL     string
	perPage     int
	client      *http.Client
	rateLimiter *RateLimiter
	metrics     *metrics.Metrics
}

// CatalogOption configures the CatalogClient.
type CatalogOption func(*CatalogClient)

// WithBaseURL overrides the default Vinted host.
func WithBaseURL(u string) CatalogOption {
	return func(c *CatalogClient) {
		c.baseURL = u
	}
}

// WithPerPage overrides the default snapshot size.
func WithPerPage(n int) CatalogOption {
	return func(c *CatalogClient) {
		c.perPage = n
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) CatalogOption {
	return func(c *CatalogClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// call limits. When set, every Search() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) CatalogOption {
	return func(c *CatalogClient) {
		c.rateLimiter = r
	}
}

// WithMetrics wires catalog request instrumentation.
func WithMetrics(m *metrics.Metrics) CatalogOption {
	return func(c *CatalogClient) {
		c.metrics = m
	}
}

// NewCatalogClient creates a new Vinted catalog client.
func NewCatalogClient(opts ...CatalogOption) *CatalogClient {
	c := &CatalogClient{
		baseURL: defaultBaseURL,
		perPage: defaultPerPage,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type catalogAPIResponse struct {
	Items      []Item `json:"items"`
	Pagination struct {
		TotalEntries int `json:"total_entries"`
	} `json:"pagination"`
}

// Search implements Source.Search by querying the catalog endpoint,
// newest items first. An empty result set is a valid snapshot, not an
// error.
func (c *CatalogClient) Search(
	ctx context.Context,
	req SearchRequest,
) (*SearchResponse, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				c.countRequest("daily_limit")
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		if c.metrics != nil {
			c.metrics.CatalogDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
		}
	}

	u := c.buildSearchURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("User-Agent", browserUserAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.countRequest("transport_error")
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countRequest("transport_error")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.countRequest("http_error")
		return nil, fmt.Errorf(
			"catalog API error (status %d): %s",
			resp.StatusCode, truncate(string(body), 200),
		)
	}

	var apiResp catalogAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.countRequest("bad_payload")
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}

	c.countRequest("ok")
	return &SearchResponse{
		Items: apiResp.Items,
		Total: apiResp.Pagination.TotalEntries,
	}, nil
}

func (c *CatalogClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}
	params.Set("search_text", req.Text)
	params.Set("order", "newest_first")

	limit := req.Limit
	if limit <= 0 {
		limit = c.perPage
	}
	params.Set("per_page", strconv.Itoa(limit))

	if req.PriceMin != nil {
		params.Set("price_from", strconv.FormatFloat(*req.PriceMin, 'f', -1, 64))
	}
	if req.PriceMax != nil {
		params.Set("price_to", strconv.FormatFloat(*req.PriceMax, 'f', -1, 64))
	}

	return c.baseURL + catalogPath + "?" + params.Encode()
}

func (c *CatalogClient) countRequest(outcome string) {
	if c.metrics != nil {
		c.metrics.CatalogRequestsTotal.WithLabelValues(outcome).Inc()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
