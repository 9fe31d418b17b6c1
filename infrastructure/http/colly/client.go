// ABOUTME: Colly-backed HTTP client, an alternative transport for the page fetcher
// ABOUTME: A fresh collector per call keeps requests independent of each other

package colly

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"ukazaniya-bot/core/interfaces"
	"github.com/gocolly/colly"
)

const (
	collyUserAgent = "UkazaniyaBot/1.0 (+liturgical instructions for Telegram; colly)"
	maxBodySize    = 5 * 1024 * 1024
)

// CollyHTTPClient implements the HTTPClient interface with a colly collector
type CollyHTTPClient struct {
	timeout time.Duration
}

// NewCollyHTTPClient creates a colly-backed client with the given request timeout
func NewCollyHTTPClient(timeout time.Duration) *CollyHTTPClient {
	return &CollyHTTPClient{timeout: timeout}
}

// Get visits the URL once. Error statuses are delivered as responses so the
// caller sees the real status code; transport failures come back as errors,
// together with the response when colly had one.
func (c *CollyHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
		colly.ParseHTTPErrorResponse(),
	)
	if c.timeout > 0 {
		collector.SetRequestTimeout(c.timeout)
	}

	var result *collyResponse
	capture := func(r *colly.Response) {
		if r == nil || r.StatusCode == 0 {
			return
		}
		headers := http.Header{}
		if r.Headers != nil {
			headers = *r.Headers
		}
		result = &collyResponse{
			statusCode: r.StatusCode,
			body:       r.Body,
			headers:    headers,
		}
	}

	collector.OnResponse(capture)
	collector.OnError(func(r *colly.Response, _ error) {
		capture(r)
	})

	err := collector.Visit(url)
	if result == nil {
		return nil, err
	}
	return result, err
}

// collyResponse implements the Response interface
type collyResponse struct {
	statusCode int
	body       []byte
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *collyResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the buffered response body
func (r *collyResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}

// Header returns the value of the specified header
func (r *collyResponse) Header(key string) string {
	return r.headers.Get(key)
}
