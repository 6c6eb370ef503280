// Package rstest provides a fake RightSignature API for tests.
//
// Routes are registered with Handle using the path the client requests, including the ".json"
// suffix. Every request the server receives is recorded so tests can inspect it.
package rstest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is a request received by the fake API.
type RecordedRequest struct {
	Method string

	// Path is decoded; EscapedPath is the path as sent.
	Path        string
	EscapedPath string

	RawQuery string
	Header   http.Header
	Body     string
}

// Server is a fake RightSignature API.
type Server struct {
	*httptest.Server

	router *chi.Mux

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a fake API that is closed when the test ends.
// Unregistered routes answer 404 with a RightSignature error body.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{router: chi.NewRouter()}
	s.router.Use(s.record)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Respond(w, http.StatusNotFound, `{"error":{"message":"Not found"}}`)
	})

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Server.Close)
	return s
}

// BaseURL is the API root to configure the client with.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/api/"
}

// Handle answers method requests for path (e.g. "/api/documents/abc.json") with body.
func (s *Server) Handle(method, path, body string) {
	s.router.MethodFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		Respond(w, http.StatusOK, body)
	})
}

// HandleFunc registers a custom handler.
func (s *Server) HandleFunc(method, path string, h http.HandlerFunc) {
	s.router.MethodFunc(method, path, h)
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request. It fails the test if there was none.
func (s *Server) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request received by fake API")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Header:      r.Header.Clone(),
			Body:        string(body),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Respond writes a JSON body with the given status.
func Respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
