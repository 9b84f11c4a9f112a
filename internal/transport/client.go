package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout = 30 * time.Second

	maxRedirects     = 5
	defaultUserAgent = "libtranslate/1.0"
)

// ErrRequest wraps failures below the HTTP layer: dial errors, timeouts and
// malformed responses.
var ErrRequest = errors.New("request failed")

// StatusError is returned when a backend answers with a status of 400 or above.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, fasthttp.StatusMessage(e.Code))
}

// Getter fetches the body of a URL.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// Client performs GET requests with a fixed per-request timeout.
type Client struct {
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

// New creates a Client. A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 90 * time.Second,
			MaxConnsPerHost:     512,
		},
		timeout:   timeout,
		userAgent: defaultUserAgent,
	}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get fetches url and returns the response body. Redirects are followed.
// Cancelling ctx abandons the wait; the in-flight request still ends at the
// client timeout.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)
	req.SetTimeout(c.timeout)

	done := make(chan error, 1)
	go func() {
		done <- c.client.DoRedirects(req, resp, maxRedirects)
	}()

	select {
	case err := <-done:
		defer release(req, resp)
		return readBody(url, resp, err)
	case <-ctx.Done():
		// req and resp belong to the request goroutine until it returns
		go func() {
			<-done
			release(req, resp)
		}()
		return "", ctx.Err()
	}
}

func readBody(url string, resp *fasthttp.Response, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}

	if code := resp.StatusCode(); code >= fasthttp.StatusBadRequest {
		return "", &StatusError{Code: code, URL: url}
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}

	return string(body), nil
}

func release(req *fasthttp.Request, resp *fasthttp.Response) {
	fasthttp.ReleaseRequest(req)
	fasthttp.ReleaseResponse(resp)
}
