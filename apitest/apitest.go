// Package apitest provides a stub HTTP backend for testing clients built
// with the apiclient package: it serves canned responses and captures
// every request it receives.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Capture is one request received by the stub server.
type Capture struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Server is a stub backend. Until configured with Respond or RespondJSON
// it answers every request with 200 and an empty JSON object.
type Server struct {
	t   testing.TB
	srv *httptest.Server

	mu       sync.Mutex
	status   int
	ctype    string
	body     []byte
	captures []Capture
}

// NewServer starts a stub server, closed automatically when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		t:      t,
		status: http.StatusOK,
		ctype:  "application/json",
		body:   []byte("{}"),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string { return s.srv.URL }

// Respond sets the canned response for subsequent requests.
func (s *Server) Respond(status int, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.ctype = contentType
	s.body = body
}

// RespondJSON sets a canned JSON response.
func (s *Server) RespondJSON(status int, v any) {
	s.t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		s.t.Fatalf("apitest: marshal response: %v", err)
	}
	s.Respond(status, "application/json", b)
}

// Requests returns all captured requests in arrival order.
func (s *Server) Requests() []Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Capture, len(s.captures))
	copy(out, s.captures)
	return out
}

// Last returns the most recent captured request, failing the test if none
// arrived.
func (s *Server) Last() Capture {
	s.t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.captures) == 0 {
		s.t.Fatal("apitest: no requests captured")
	}
	return s.captures[len(s.captures)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body) //nolint:errcheck // stub

	s.mu.Lock()
	s.captures = append(s.captures, Capture{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, ctype, resp := s.status, s.ctype, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(status)
	w.Write(resp) //nolint:errcheck // stub
}
