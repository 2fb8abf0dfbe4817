package pexels

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	timeout      time.Duration
	maxIdleConns int
	httpClient   *http.Client
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxIdleConns sets the maximum number of idle connections per host
// kept in the transport pool.
func WithMaxIdleConns(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.maxIdleConns = n
		}
	}
}

// WithBaseURL points the client at a different API root. Intended for
// testing against a local server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. Timeout and
// pool options are ignored when this is set.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
