// Package storage talks to the object-storage collaborator that holds
// patient uploads: public URL construction and a reachability probe.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client represents the storage collaborator.
type Client struct {
	baseURL string       // storage host serving public objects
	client  *http.Client // HTTP client used for probes
}

// NewClient creates a storage client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// PublicURL maps a storage path to its publicly fetchable URL.
func (c *Client) PublicURL(path string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("storage base url is not configured")
	}

	return fmt.Sprintf("%s/object/public/%s", c.baseURL, strings.TrimLeft(path, "/")), nil
}

// Probe checks that a public URL is actually fetchable. A HEAD request is
// enough; anything below 400 counts as reachable.
func (c *Client) Probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusBadRequest
}
