// Package zenquotes fetches the quote-of-the-day postscript. The upstream
// API rations requests, so each day's batch is cached on disk and reused for
// the rest of that day.
package zenquotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// Quote is one quotation with its attribution.
type Quote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// Client fetches and caches daily quote batches.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheDir   string
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewClient creates a quote client caching under cacheDir.
func NewClient(cacheDir string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  "https://zenquotes.io",
		cacheDir: cacheDir,
		clock:    clock,
		logger:   logger,
	}
}

// Random returns one quote picked at random from today's batch, fetching and
// caching the batch on the first call of the day.
func (c *Client) Random(ctx context.Context) (Quote, error) {
	quotes, err := c.todaysBatch(ctx)
	if err != nil {
		return Quote{}, err
	}
	if len(quotes) == 0 {
		return Quote{}, errors.New("empty quote batch")
	}
	return quotes[rand.IntN(len(quotes))], nil
}

func (c *Client) todaysBatch(ctx context.Context) ([]Quote, error) {
	path := c.cachePath()

	if data, err := os.ReadFile(path); err == nil {
		var quotes []Quote
		if err := json.Unmarshal(data, &quotes); err == nil && len(quotes) > 0 {
			return quotes, nil
		}
		c.logger.Warn("discarding unreadable quote cache", "path", path)
	}

	quotes, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(quotes); err == nil {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			c.logger.Warn("could not write quote cache", "path", path, "error", err)
		}
	}
	return quotes, nil
}

func (c *Client) fetch(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/quotes", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quotes request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("zenquotes API error: status %d: %s", resp.StatusCode, body)
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return quotes, nil
}

func (c *Client) cachePath() string {
	day := c.clock.Now().Format("2006-01-02")
	return filepath.Join(c.cacheDir, fmt.Sprintf("quotes-%s.json", day))
}
