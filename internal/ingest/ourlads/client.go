package ourlads

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// BaseURL for Ourlads NFL depth charts
	BaseURL = "https://www.ourlads.com/nfldepthcharts"

	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	requestTimeout = 30 * time.Second
)

// Client fetches Ourlads depth-chart pages.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New creates a new Ourlads client with a custom base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}

	http := resty.New()
	http.SetTimeout(requestTimeout)
	http.SetHeader("User-Agent", UserAgent)

	return &Client{
		http:    http,
		baseURL: baseURL,
	}
}

// NewClient creates a new Ourlads client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// FetchDepthChart performs one GET for a team's pro-football depth chart
// page and returns the raw HTML.
func (c *Client) FetchDepthChart(ctx context.Context, team string) (string, error) {
	url := fmt.Sprintf("%s/pfdepthchart/%s", c.baseURL, team)

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching depth chart for %s: %w", team, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("depth chart request for %s: status %s", team, res.Status())
	}

	return res.String(), nil
}
