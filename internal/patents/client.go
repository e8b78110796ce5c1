// Package patents queries the patent gateway used to enrich lab pages.
package patents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultRateLimit is the default number of gateway requests per second.
	DefaultRateLimit = 2.0

	// DefaultCacheSize is the default number of cached search results.
	DefaultCacheSize = 256

	providerName = "patent gateway"
)

// Patent is a single publication returned by the gateway.
type Patent struct {
	PublicationNumber string   `json:"publicationNumber"`
	Title             string   `json:"title"`
	Abstract          string   `json:"abstract,omitempty"`
	Applicants        []string `json:"applicants"`
	Inventors         []string `json:"inventors"`
	PublicationDate   string   `json:"publicationDate,omitempty"`
	URL               string   `json:"url,omitempty"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Query   string   `json:"query"`
	Total   int      `json:"total"`
	Patents []Patent `json:"patents"`
}

type searchResponse struct {
	Total   int      `json:"total"`
	Results []Patent `json:"results"`
}

// Client is a rate-limited, caching client for the patent gateway.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	cache       *lru.Cache[string, *SearchResult]
	baseURL     string
	credentials *clientcredentials.Config
	cacheSize   int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client. When client credentials are
// configured it is used as the base transport for token and API calls.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the number of requests per second. Zero or less
// disables limiting.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithCacheSize sets the number of cached results. Zero disables caching.
func WithCacheSize(size int) ClientOption {
	return func(c *Client) {
		c.cacheSize = size
	}
}

// WithClientCredentials authenticates with the OAuth2 client credentials
// grant against tokenURL.
func WithClientCredentials(clientID, clientSecret, tokenURL string) ClientOption {
	return func(c *Client) {
		c.credentials = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
	}
}

// NewClient creates a new patent gateway client.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, apperrors.ErrPatentGatewayNotConfigured
	}
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    strings.TrimRight(baseURL, "/"),
		cacheSize:  DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cacheSize > 0 {
		cache, err := lru.New[string, *SearchResult](c.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create patent cache: %w", err)
		}
		c.cache = cache
	}

	if c.credentials != nil {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
		authed := c.credentials.Client(ctx)
		authed.Timeout = c.httpClient.Timeout
		c.httpClient = authed
	}
	return c, nil
}

// Search returns the patents matching query. Identical queries are served
// from the cache.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	key := cacheKey(query, limit)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached.clone(query), nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build patent request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := logger.WithContext(ctx).WithField("query", query)
	log.Debugf("Patent gateway request: url=%s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(providerName, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Errorf("Patent gateway failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, apperrors.NewUpstreamError(providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewUpstreamError(providerName, resp.StatusCode, "invalid response: "+err.Error())
	}

	result := &SearchResult{
		Query:   query,
		Total:   decoded.Total,
		Patents: decoded.Results,
	}
	if result.Patents == nil {
		result.Patents = []Patent{}
	}
	if c.cache != nil {
		c.cache.Add(key, result.clone(query))
	}
	return result, nil
}

// clone copies r for a caller that asked for query. Cache entries are keyed
// case-insensitively, so the query is taken from the caller.
func (r *SearchResult) clone(query string) *SearchResult {
	out := &SearchResult{Query: query, Total: r.Total, Patents: make([]Patent, len(r.Patents))}
	for i, p := range r.Patents {
		p.Applicants = slices.Clone(p.Applicants)
		p.Inventors = slices.Clone(p.Inventors)
		out.Patents[i] = p
	}
	return out
}

func cacheKey(query string, limit int) string {
	return strings.ToLower(strings.TrimSpace(query)) + "|" + strconv.Itoa(limit)
}
