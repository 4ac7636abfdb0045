package nhl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jsvec/faceoff/core/logger"
)

// DefaultBaseURL is the public NHL stats API endpoint.
const DefaultBaseURL = "https://api-web.nhle.com/v1"

// Client is an HTTP client for the NHL API with an on-disk cache. A zero
// ForceRefresh serves cached payloads within the store's validity window.
type Client struct {
	HTTP         *http.Client
	Store        *CacheStore
	BaseURL      string
	UserAgent    string
	ForceRefresh bool

	log logger.Logger
}

// NewClient creates a Client over the given cache store. A nil store
// disables caching entirely.
func NewClient(store *CacheStore, log logger.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		Store:     store,
		BaseURL:   DefaultBaseURL,
		UserAgent: "faceoff/1.0",
		log:       log,
	}
}

// fetch retrieves urlPath, serving from cache when the entry named cacheName
// is still valid. Fresh responses are written back to the cache.
func (c *Client) fetch(ctx context.Context, urlPath, cacheName string) ([]byte, error) {
	if c.Store != nil && !c.ForceRefresh && c.Store.Valid(cacheName) {
		if body, err := c.Store.Read(cacheName); err == nil {
			return body, nil
		}
		// Unreadable cache entries fall through to the network.
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nhl: GET %s: %w", urlPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nhl: read %s: %w", urlPath, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nhl: GET %s: status %d", urlPath, resp.StatusCode)
	}

	if c.Store != nil {
		if err := c.Store.Write(cacheName, body); err != nil && c.log != nil {
			c.log.Warnf("cache write for %s failed: %v", cacheName, err)
		}
	}
	return body, nil
}

// CurrentSeason returns the season identifier for now, e.g. "20252026".
// NHL seasons span two calendar years; July starts the upcoming season.
func CurrentSeason(now time.Time) string {
	if now.Month() < time.July {
		return fmt.Sprintf("%d%d", now.Year()-1, now.Year())
	}
	return fmt.Sprintf("%d%d", now.Year(), now.Year()+1)
}

// PreviousSeason returns the season before the given one.
func PreviousSeason(season string) string {
	var start int
	if _, err := fmt.Sscanf(season, "%4d", &start); err != nil {
		return ""
	}
	return fmt.Sprintf("%d%d", start-1, start)
}
