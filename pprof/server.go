// Package pprof exposes the runtime profiling endpoints on a dedicated
// listener, kept off the public API port.
package pprof

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"
)

const (
	pprofURL        = "/debug/pprof/"
	cmdlineURL      = "/debug/pprof/cmdline"
	profileURL      = "/debug/pprof/profile"
	symbolURL       = "/debug/pprof/symbol"
	traceURL        = "/debug/pprof/trace"
	goroutineURL    = "/debug/pprof/goroutine"
	heapURL         = "/debug/pprof/heap"
	threadcreateURL = "/debug/pprof/threadcreate"
	blockURL        = "/debug/pprof/block"
)

const (
	defaultHost              = "127.0.0.1"
	defaultPort              = 8086
	defaultReadHeaderTimeout = 5 * time.Second
)

// Config defines the profiling server configuration.
type Config struct {
	host              string
	port              int
	readHeaderTimeout time.Duration
}

// Option configures the Config.
type Option func(*Config)

// WithHost sets the listen host (default: "127.0.0.1").
func WithHost(host string) Option {
	return func(c *Config) {
		c.host = host
	}
}

// WithPort sets the listen port (default: 8086).
func WithPort(port int) Option {
	return func(c *Config) {
		c.port = port
	}
}

// WithReadHeaderTimeout sets the read header timeout (default: 5s).
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.readHeaderTimeout = timeout
	}
}

// NewConfig creates a new Config with defaults and applies options.
func NewConfig(opts ...Option) Config {
	config := Config{
		host:              defaultHost,
		port:              defaultPort,
		readHeaderTimeout: defaultReadHeaderTimeout,
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}

// Server runs the profiling HTTP server.
type Server struct {
	address           string
	readHeaderTimeout time.Duration
	httpServer        *http.Server
}

// NewServer initializes a new profiling server.
func NewServer(cfg Config) *Server {
	return &Server{
		address:           fmt.Sprintf("%s:%d", cfg.host, cfg.port),
		readHeaderTimeout: cfg.readHeaderTimeout,
	}
}

// Run starts the profiling server.
func (s *Server) Run(_ context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.address,
		Handler:           s.router(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	return s.httpServer.ListenAndServe()
}

// Close shuts down the server.
func (s *Server) Close() error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}

func (s *Server) router() http.Handler {
	router := http.NewServeMux()
	router.HandleFunc(pprofURL, pprof.Index)
	router.HandleFunc(cmdlineURL, pprof.Cmdline)
	router.HandleFunc(profileURL, pprof.Profile)
	router.HandleFunc(symbolURL, pprof.Symbol)
	router.HandleFunc(traceURL, pprof.Trace)
	router.Handle(goroutineURL, pprof.Handler("goroutine"))
	router.Handle(heapURL, pprof.Handler("heap"))
	router.Handle(threadcreateURL, pprof.Handler("threadcreate"))
	router.Handle(blockURL, pprof.Handler("block"))
	return router
}
