// Package server exposes the synthesis layer over HTTP: one-shot value
// endpoints, a websocket stream, and Prometheus metrics. Every request
// carries its own seed, so responses replay exactly from the envelope
// alone.
package server

import (
	"fmt"
	"time"

	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/source"
)

const (
	defaultHost              = "0.0.0.0"
	defaultPort              = 8085
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

var (
	ErrEmptyHost = errors.New("host cannot be empty")
	ErrZeroPort  = errors.New("port cannot be zero")
)

// Config defines the API server configuration.
type Config struct {
	address           string
	host              string
	port              int
	readTimeout       time.Duration
	writeTimeout      time.Duration
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
	algorithm         string
}

// Validate checks if the configuration is valid, reporting every failing
// field at once.
func (c *Config) Validate() error {
	var result error
	if c.host == "" {
		result = errors.Append(result, ErrEmptyHost)
	}
	if c.port == 0 {
		result = errors.Append(result, ErrZeroPort)
	}
	if _, err := source.New(c.algorithm, 0); err != nil {
		result = errors.Append(result, err)
	}
	return result
}

// Option configures the Config.
type Option func(*Config)

// WithHost sets the server host (default: "0.0.0.0").
func WithHost(host string) Option {
	return func(c *Config) {
		c.host = host
	}
}

// WithPort sets the server port (default: 8085).
func WithPort(port int) Option {
	return func(c *Config) {
		c.port = port
	}
}

// WithReadTimeout sets the read timeout (default: 10s).
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.readTimeout = timeout
	}
}

// WithWriteTimeout sets the write timeout (default: 30s).
func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.writeTimeout = timeout
	}
}

// WithReadHeaderTimeout sets the read header timeout (default: 5s).
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.readHeaderTimeout = timeout
	}
}

// WithShutdownTimeout sets how long graceful shutdown may take
// (default: 10s).
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.shutdownTimeout = timeout
	}
}

// WithAlgorithm sets the draw source algorithm for request generators
// (default: "pcg").
func WithAlgorithm(algorithm string) Option {
	return func(c *Config) {
		c.algorithm = algorithm
	}
}

// NewConfig creates a new Config with defaults and applies options.
func NewConfig(opts ...Option) *Config {
	config := &Config{
		host:              defaultHost,
		port:              defaultPort,
		readTimeout:       defaultReadTimeout,
		writeTimeout:      defaultWriteTimeout,
		readHeaderTimeout: defaultReadHeaderTimeout,
		shutdownTimeout:   defaultShutdownTimeout,
		algorithm:         source.AlgorithmPCG,
	}

	for _, opt := range opts {
		opt(config)
	}

	config.address = fmt.Sprintf("%s:%d", config.host, config.port)
	return config
}
