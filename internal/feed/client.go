// Package feed retrieves the raw calendar text over HTTP.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// UserAgent identifies this tool to the calendar host.
const UserAgent = "thomsfoolery-schedule-sync/1.0"

// StatusError reports a non-2xx response from the feed host.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed returned %s", e.Status)
}

// Client fetches ICS feeds. The timeout applies to the whole request,
// including reading the body.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  UserAgent,
	}
}

// Fetch downloads the feed and decodes it permissively: byte sequences
// that are not valid UTF-8 are replaced with U+FFFD rather than failing
// the run.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch feed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read feed body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return strings.ToValidUTF8(string(body), "�"), nil
}
