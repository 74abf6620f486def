package wikitable

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"travelmap/internal/cache"
)

const fetchCacheTTL = 10 * time.Minute

// Fetcher retrieves the wiki page HTML with retries and a short lived cache,
// so a burst of map loads does not hammer the wiki.
type Fetcher struct {
	client *retryablehttp.Client
	cache  cache.Cache
}

func NewFetcher(c cache.Cache) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = slog.Default()
	return &Fetcher{client: client, cache: c}
}

// FetchHTML returns the page body, from cache when fresh.
func (f *Fetcher) FetchHTML(ctx context.Context, pageURL string) (string, error) {
	key := "wiki/" + cache.Key(pageURL)
	if body, ok := f.cache.Get(key); ok {
		return body, nil
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build wiki request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch wiki page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch wiki page: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read wiki page: %w", err)
	}

	if err := f.cache.SetTTL(key, string(body), fetchCacheTTL); err != nil {
		slog.WarnContext(ctx, "failed to cache wiki page", "url", pageURL, "error", err)
	}
	return string(body), nil
}
