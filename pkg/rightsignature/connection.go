package rightsignature

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// DefaultBaseURL is the RightSignature API root. Resource paths are appended to it verbatim.
const DefaultBaseURL = "https://rightsignature.com/api/"

const (
	contentTypeHeader = "Content-Type"
	contentTypeXML    = "text/xml;charset=utf-8"
	apiTokenHeader    = "api-token"
)

var bareXMLDeclaration = regexp.MustCompile(`(?i)<\?xml version="1\.0"\?>`)

// Request describes one API call. Only Path is mandatory.
type Request struct {
	// Path is the resource path relative to the base URL, without the ".json" suffix (e.g. "documents/abc").
	Path string

	// Query is encoded with EncodeQuery and appended when non-empty.
	Query map[string]any

	// Header contains OPTIONAL extra headers.
	Header http.Header

	// Method defaults to GET.
	Method string

	// Body is the OPTIONAL XML request body.
	Body []byte
}

// Connection builds API requests, sends them through a Transport and classifies the responses.
type Connection struct {
	token     string
	baseURL   string
	transport Transport
	logger    *slog.Logger
}

// NewConnection returns a Connection. An empty baseURL selects DefaultBaseURL; a nil transport
// selects an HTTPTransport on http.DefaultClient; a nil logger discards output.
func NewConnection(token, baseURL string, transport Transport, logger *slog.Logger) *Connection {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Connection{
		token:     token,
		baseURL:   baseURL,
		transport: transport,
		logger:    logger,
	}
}

// BaseURL returns the API root the connection sends requests to.
func (c *Connection) BaseURL() string { return c.baseURL }

// URL returns the full URL for a resource path and query arguments.
func (c *Connection) URL(path string, query map[string]any) string {
	u := c.baseURL + path + ".json"
	if len(query) > 0 {
		u += "?" + EncodeQuery(query)
	}
	return u
}

// Call sends req and returns the decoded response.
//
// Errors are ErrCodeConnection when the transport fails, ErrCodeParse when the body is not JSON
// or is JSON null, and ErrCodeAPI when the response carries an error object.
func (c *Connection) Call(ctx context.Context, req Request) (Node, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.URL(req.Path, req.Query)

	var body []byte
	if req.Body != nil {
		body = bareXMLDeclaration.ReplaceAll(req.Body, []byte(`<?xml version="1.0" encoding="UTF-8"?>`))
	}

	header := http.Header{}
	for name, values := range req.Header {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	header.Set(contentTypeHeader, contentTypeXML)
	header.Set(apiTokenHeader, c.token)

	reqLogger := c.logger.With(slog.String("request_id", uuid.NewString()))
	reqLogger.Debug("api request",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("body_bytes", len(body)),
	)

	data, err := c.transport.Send(ctx, method, url, header, body)
	if err != nil {
		reqLogger.Debug("api connection failed", slog.String("error", err.Error()))
		return Node{}, WrapConnectionError(err, "API connection error")
	}
	reqLogger.Debug("api response", slog.Int("body_bytes", len(data)))

	resp, err := ParseNode(data)
	if err != nil {
		return Node{}, WrapParseError(err, "response can not be parsed")
	}
	if b, isBool := resp.Raw().(bool); !resp.Exists() || (isBool && !b) {
		return Node{}, NewParseError("response can not be parsed: " + string(data))
	}

	if apiErr := resp.Get("error"); !apiErr.IsEmpty() {
		msg := apiErr.Get("message").String()
		reqLogger.Debug("api error", slog.String("message", msg))
		return Node{}, NewAPIError(msg)
	}

	return resp, nil
}
