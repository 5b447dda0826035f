package zenquotes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotesBody = `[
	{"q": "The obstacle is the way.", "a": "Marcus Aurelius"},
	{"q": "Well begun is half done.", "a": "Aristotle"}
]`

func testClient(baseURL, cacheDir string, clock clockwork.Clock) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		cacheDir:   cacheDir,
		clock:      clock,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_Random_FetchesAndCaches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/quotes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quotesBody))
	}))
	defer srv.Close()

	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 26, 9, 0, 0, 0, time.UTC))
	c := testClient(srv.URL, dir, clock)

	quote, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, quote.Text)
	assert.NotEmpty(t, quote.Author)

	// Second call the same day is served from the cache file.
	_, err = c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	cached, err := os.ReadFile(filepath.Join(dir, "quotes-2024-03-26.json"))
	require.NoError(t, err)
	assert.Contains(t, string(cached), "Marcus Aurelius")
}

func TestClient_Random_NewDayRefetches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(quotesBody))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 26, 23, 0, 0, 0, time.UTC))
	c := testClient(srv.URL, t.TempDir(), clock)

	_, err := c.Random(context.Background())
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)

	_, err = c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Random_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("Too many requests."))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 26, 9, 0, 0, 0, time.UTC))
	c := testClient(srv.URL, t.TempDir(), clock)

	_, err := c.Random(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Random_CorruptCacheIsReplaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(quotesBody))
	}))
	defer srv.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quotes-2024-03-26.json"), []byte("{not json"), 0o644))

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 26, 9, 0, 0, 0, time.UTC))
	c := testClient(srv.URL, dir, clock)

	quote, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, quote.Text)
}
