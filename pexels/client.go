package pexels

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// defaultBaseURL is the root of the Pexels API. Photo and collection
	// paths carry the v1 segment; video paths do not.
	defaultBaseURL = "https://api.pexels.com"

	apiVersion      = "v1"
	videoPath       = "videos"
	collectionsPath = "collections"

	defaultTimeout      = 30 * time.Second
	defaultMaxIdleConns = 10
)

// Client wraps the Pexels API. It holds no mutable state beyond the
// transport handle, so concurrent use from multiple goroutines is safe.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Pexels client authenticated with the given API key.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := clientOptions{
		baseURL:      defaultBaseURL,
		timeout:      defaultTimeout,
		maxIdleConns: defaultMaxIdleConns,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: options.maxIdleConns,
			},
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// getJSON issues an authenticated GET for rawurl and decodes the body into
// out. resource and id, when set, name what a 404 response refers to;
// identifier-less endpoints surface 404 as a generic API error instead.
func (c *Client) getJSON(ctx context.Context, rawurl, resource, id string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return &URLError{Err: err}
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", rawurl).Msg("Making Pexels API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return &AuthError{Message: "invalid API key"}
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		if resource != "" {
			return &NotFoundError{Resource: resource, ID: id}
		}
		fallthrough
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// resolve rebases a rendered request URL onto the client's base URL, so a
// client constructed with WithBaseURL targets its own host.
func (c *Client) resolve(rawurl string) string {
	if c.baseURL == defaultBaseURL {
		return rawurl
	}
	return c.baseURL + strings.TrimPrefix(rawurl, defaultBaseURL)
}

// queryPairs accumulates query parameters in the order they are added,
// rendering them with standard URL query-string encoding. An unset optional
// parameter is simply never added.
type queryPairs struct {
	buf strings.Builder
}

func (q *queryPairs) add(key, value string) {
	if q.buf.Len() == 0 {
		q.buf.WriteByte('?')
	} else {
		q.buf.WriteByte('&')
	}
	q.buf.WriteString(url.QueryEscape(key))
	q.buf.WriteByte('=')
	q.buf.WriteString(url.QueryEscape(value))
}

func (q *queryPairs) addInt(key string, value int) {
	q.add(key, fmt.Sprintf("%d", value))
}

func (q *queryPairs) String() string { return q.buf.String() }

// buildURI validates base+path as a URL and appends the rendered query.
func buildURI(path string, q *queryPairs) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", &URLError{Err: err}
	}
	if q == nil {
		return u.String(), nil
	}
	return u.String() + q.String(), nil
}
