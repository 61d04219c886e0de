package usage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the NHS Digital file host serving the usage releases.
const DefaultBaseURL = "https://files.digital.nhs.uk"

// Client downloads usage releases. The zero value is not usable; construct
// with NewClient.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a client rooted at baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)
	return &Client{httpClient: httpClient}
}

// Download fetches and parses the release for year.
func (c *Client) Download(ctx context.Context, year Year) (*Report, error) {
	if year.Path() == "" {
		return nil, InvalidYearError{Value: string(year)}
	}
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(year.Path())
	if err != nil {
		return nil, fmt.Errorf("download usage %s: %w", year, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("download usage %s: unexpected status %s", year, resp.Status())
	}
	entries, err := Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse usage %s: %w", year, err)
	}
	return &Report{Year: year, Entries: entries}, nil
}
