// Package places resolves extracted dateline place names against a
// Nominatim-style location-search endpoint. Queries are rate limited per
// host, checked against robots.txt, and cached, because the same district
// and mandal names come up in paste after paste.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dateline/internal/cache"
	"dateline/internal/model"
	"dateline/internal/util"
	"dateline/internal/ratelimit"
)

// Place is one location-search result. Fields are validated at this
// boundary so nothing loosely typed reaches callers.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Class       string  `json:"class,omitempty"`
	Type        string  `json:"type,omitempty"`
	Importance  float64 `json:"importance,omitempty"`
}

// nominatimResult mirrors the wire format; lat/lon arrive as strings
type nominatimResult struct {
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

// Client queries the location-search endpoint
type Client struct {
	baseURL    string
	userAgent  string
	maxResults int
	maxBytes   int64
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	robots     *util.RobotsChecker
	cache      cache.Cache // nil disables caching
}

// NewClient creates a location-search client
func NewClient(cfg model.PlacesConfig, httpCfg model.HTTPConfig, c cache.Cache) *Client {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  httpCfg.UserAgent,
		maxResults: maxResults,
		maxBytes:   httpCfg.MaxBodyBytes,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
		},
		limiter: ratelimit.NewLimiter(cfg.RatePerSecond, cfg.Burst),
		robots:  util.NewRobotsChecker(httpCfg.UserAgent, timeout),
		cache:   c,
	}
}

// Search resolves a place query to candidate locations
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty place query")
	}

	cacheKey := cache.Key("search:" + query)
	if c.cache != nil {
		if data, found := c.cache.Get(cacheKey); found {
			var places []Place
			if err := json.Unmarshal(data, &places); err == nil {
				return places, nil
			}
			// Corrupt entry: drop it and fall through to a fresh fetch
			_ = c.cache.Delete(cacheKey)
		}
	}

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(c.maxResults)},
	}.Encode())

	if !c.robots.IsAllowed(ctx, searchURL) {
		return nil, fmt.Errorf("robots.txt disallows %s", searchURL)
	}

	if err := c.limiter.Wait(ctx, searchURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	places, err := c.fetch(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(places); err == nil {
			_ = c.cache.Set(cacheKey, data, 0)
		}
	}

	return places, nil
}

// fetch performs the HTTP request and validates the response
func (c *Client) fetch(ctx context.Context, searchURL string) ([]Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	maxBytes := c.maxBytes
	if maxBytes <= 0 {
		maxBytes = 2_000_000
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		if r.DisplayName == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		places = append(places, Place{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
			Class:       r.Class,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}

	return places, nil
}
