package textsource

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// URLSource fetches text over HTTP. One shot, no retries: a failed fetch
// fails the whole run.
type URLSource struct {
	url    string
	client *http.Client
}

func NewURLSource(rawURL string) *URLSource {
	return &URLSource{
		url: rawURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *URLSource) Location() string { return s.url }

func (s *URLSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch text, status code: %d", resp.StatusCode)
	}

	return decode(resp.Body, resp.Header.Get("Content-Type"))
}
