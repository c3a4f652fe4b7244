package server

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle. Use New.
type Server struct {
	httpServer *http.Server
}

const maxHeaderBytes = 1 << 20 // 1 MB

// Timeouts tunes the underlying http.Server. Zero fields fall back to defaults.
type Timeouts struct {
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
}

var defaultTimeouts = Timeouts{
	ReadHeader: 10 * time.Second,
	Write:      10 * time.Second,
	Idle:       60 * time.Second,
}

func (t Timeouts) withDefaults() Timeouts {
	if t.ReadHeader <= 0 {
		t.ReadHeader = defaultTimeouts.ReadHeader
	}
	if t.Write <= 0 {
		t.Write = defaultTimeouts.Write
	}
	if t.Idle <= 0 {
		t.Idle = defaultTimeouts.Idle
	}
	return t
}

// newHTTPServer builds a configured *http.Server for the given address and handler.
func newHTTPServer(addr string, handler http.Handler, t Timeouts) *http.Server {
	t = t.withDefaults()
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: t.ReadHeader,
		WriteTimeout:      t.Write,
		IdleTimeout:       t.Idle,
	}
}

// normalizeAddr accepts "8080" or ":8080"; empty means ":8080".
func normalizeAddr(port string) string {
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// New builds a server for the given port and handler. Building it up front
// lets Shutdown run from any goroutine, even before Run is reached.
func New(port string, handler http.Handler, t Timeouts) *Server {
	return &Server{httpServer: newHTTPServer(normalizeAddr(port), handler, t)}
}

// Addr is the listen address, e.g. ":8080".
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run blocks until the server stops. After Shutdown it returns http.ErrServerClosed.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
