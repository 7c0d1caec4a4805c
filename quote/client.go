// Package quote fetches the decorative random quote shown on the site.
// The endpoint is purely cosmetic, so the client never surfaces a hard
// failure: any error, timeout, non-200 status or decode problem degrades
// to one of the canned fallback quotes.
package quote

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"time"
)

// DefaultEndpoint is the public quote service queried by the demo site.
const DefaultEndpoint = "https://api.quotable.io/random"

// MapEmbedURL is the static map embed rendered next to the contact form.
// It is consumed read-only; there is nothing to fetch.
const MapEmbedURL = "https://www.openstreetmap.org/export/embed.html?bbox=23.7200%2C37.9600%2C23.7400%2C37.9800&layer=mapnik"

const fetchTimeout = 5 * time.Second

// Quote is a text/author pair.
type Quote struct {
	Text   string `json:"content"`
	Author string `json:"author"`
}

// fallbacks are served whenever the endpoint cannot. Keep at least one.
var fallbacks = []Quote{
	{Text: "Good pizza waits for no one.", Author: "House proverb"},
	{Text: "The secret ingredient is always oregano.", Author: "Nonna"},
	{Text: "A pizza shared is a pizza doubled.", Author: "House proverb"},
}

// Client fetches quotes with a single fixed timeout and no retries.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the quote service URL.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger. Nil means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a quote client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: fetchTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Fetch returns a quote. On any failure it logs the cause and returns a
// canned fallback; the error is never propagated.
func (c *Client) Fetch(ctx context.Context) Quote {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		c.logger.Debug("quote request build failed, using fallback", "error", err)
		return Fallback()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("quote fetch failed, using fallback", "error", err)
		return Fallback()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("quote fetch returned non-200, using fallback", "status", resp.StatusCode)
		return Fallback()
	}

	var q Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil || q.Text == "" {
		c.logger.Debug("quote decode failed, using fallback", "error", err)
		return Fallback()
	}
	return q
}

// Fallback returns one of the canned quotes.
func Fallback() Quote {
	return fallbacks[rand.Intn(len(fallbacks))]
}
