package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client preconfigured for the gateway
// JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends JSON to baseURL and gives up on
// a request after timeout.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.R().Get("/api/v1/keys")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &HTTPClient{Client: client}
}
