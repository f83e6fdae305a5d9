package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 10*time.Second)
//	resp, err := client.R().Get("/api/auth/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance bound to
// baseURL, sending and expecting JSON, with every request bounded by timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
