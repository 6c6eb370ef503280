package rightsignature

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// Transport performs one blocking HTTP exchange and returns the raw response body.
//
// Implementations must return the body whatever the HTTP status: the RightSignature API reports
// failures inside the JSON payload, and the Connection classifies them.
// An error means no response was obtained.
type Transport interface {
	Send(ctx context.Context, method, url string, header http.Header, body []byte) ([]byte, error)
}

// HTTPTransport sends requests with a *http.Client.
type HTTPTransport struct {
	// Client is the http client to use. http.DefaultClient is used when nil.
	Client *http.Client

	// Limiter OPTIONALLY throttles outgoing requests. Requests wait for a token; nothing is retried.
	Limiter *rate.Limiter
}

// NewHTTPTransport returns a transport using client, with rate limiting disabled.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	return &HTTPTransport{Client: client}
}

// RateLimit throttles the transport to requestsPerSecond. If requestsPerSecond <= 0, rate limiting is disabled.
func (t *HTTPTransport) RateLimit(requestsPerSecond float64, burst int) *HTTPTransport {
	if requestsPerSecond <= 0 {
		t.Limiter = nil
		return t
	}
	if burst < 1 {
		burst = 1
	}
	t.Limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	return t
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, header http.Header, body []byte) ([]byte, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
