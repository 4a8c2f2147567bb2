package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// UserAgent identifies the tool on every outbound request.
const UserAgent = "worlds/1.0"

type Client struct {
	client    *http.Client
	userAgent string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: UserAgent,
	}
}

// Fetch performs a GET of url and returns the full response body.
func (c *Client) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
