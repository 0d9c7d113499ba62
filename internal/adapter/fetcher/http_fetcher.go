package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"wikiquiz/internal/domain"
)

// Browser-like headers; some article hosts answer plain Go clients with 406.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPFetcher retrieves article documents with a single GET per call.
// It performs no retries; a failed fetch terminates the pipeline execution.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements domain.ArticleFetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domain.NewFetchFailedError("failed to build article request", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", domain.NewFetchFailedError("failed to fetch article page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewFetchFailedError(
			fmt.Sprintf("article fetch returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewFetchFailedError("failed to read article body", err)
	}
	return string(body), nil
}

var _ domain.ArticleFetcher = (*HTTPFetcher)(nil)
