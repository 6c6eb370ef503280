// Package rightsignature is a client for the RightSignature token-based REST API.
//
// Reads are sent as GET requests with a query string, writes as POST requests with an XML body;
// every response is JSON. A Client hands out Template and Document clients, each of which
// remembers a guid and the last resource it loaded:
//
//	rs := rightsignature.New(token)
//	doc, err := rs.Document(ctx, "J1KHD2NX4KJ5S6X7S8")
//	if err != nil {
//		return err
//	}
//	state, _ := doc.Get("state")
//
// Template and Document clients are not safe for concurrent use.
package rightsignature

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/afero"
)

// Client is the entry point of the package.
type Client struct {
	conn *Connection
	fs   afero.Fs
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	transport  Transport
	logger     *slog.Logger
	rps        float64
	burst      int
	fs         afero.Fs
}

// Option configures a Client.
type Option func(*clientConfig)

// WithBaseURL overrides DefaultBaseURL. The URL must end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.baseURL = baseURL }
}

// WithHTTPClient sets the http client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithTransport replaces the HTTP transport entirely. WithHTTPClient and WithRateLimit are then ignored.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) { c.transport = t }
}

// WithLogger sets the logger used for request debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithRateLimit throttles requests made through the default transport.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *clientConfig) {
		c.rps = requestsPerSecond
		c.burst = burst
	}
}

// WithFs sets the filesystem local documents are read from. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *clientConfig) { c.fs = fs }
}

// New returns a Client authenticating with token.
func New(token string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := cfg.transport
	if transport == nil {
		transport = NewHTTPTransport(cfg.httpClient).RateLimit(cfg.rps, cfg.burst)
	}
	fs := cfg.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Client{
		conn: NewConnection(token, cfg.baseURL, transport, cfg.logger),
		fs:   fs,
	}
}

// Connection returns the underlying connection, for calls this package does not wrap.
func (c *Client) Connection() *Connection { return c.conn }

// Template returns a template client. When guid is set the template is loaded first.
func (c *Client) Template(ctx context.Context, guid string) (*Template, error) {
	t := newTemplate(c.conn, resource{fs: c.fs})
	if guid == "" {
		return t, nil
	}
	return t.Load(ctx, guid)
}

// Document returns a document client. When guid is set the document is loaded first.
func (c *Client) Document(ctx context.Context, guid string) (*Document, error) {
	d := newDocument(c.conn, resource{fs: c.fs})
	if guid == "" {
		return d, nil
	}
	return d.Load(ctx, guid)
}
