package polygon

import (
	"net/http"
	"time"
)

const polygonBaseURL = "https://api.polygon.io"

// baseTransportConfig returns the shared HTTP transport configuration used by Polygon clients.
func baseTransportConfig() *http.Transport {
	return &http.Transport{
		ResponseHeaderTimeout: 2 * time.Minute,
		IdleConnTimeout:       0,
		TLSHandshakeTimeout:   10 * time.Second,
		DisableKeepAlives:     true,
		MaxIdleConns:          0,
		MaxIdleConnsPerHost:   0,
	}
}

// newHTTPClient creates an HTTP client configured for Polygon requests.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: baseTransportConfig(),
		Timeout:   2 * time.Minute,
	}
}

// Client fetches daily aggregates from the Polygon API.
type Client struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewClient constructs a Client with a shared HTTP client.
func NewClient(apiKey string) *Client {
	return &Client{
		client:  newHTTPClient(),
		apiKey:  apiKey,
		baseURL: polygonBaseURL,
	}
}

// SetBaseURL overrides the API endpoint (tests).
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// Close closes connections.
func (c *Client) Close() error {
	return nil
}
