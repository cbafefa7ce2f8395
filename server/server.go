package server

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Evavic44/faker/clock"
	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/logging"
	"github.com/Evavic44/faker/metrics"
	"github.com/Evavic44/faker/safe"
)

// Server runs the synthesis HTTP API.
type Server struct {
	cfg        *Config
	clk        clock.Clock
	httpServer *http.Server
}

// NewServer initializes a new API server.
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		cfg: cfg,
		clk: clock.New(),
	}, nil
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails. Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.address,
		Handler:           s.handler(),
		ReadTimeout:       s.cfg.readTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
	}

	group, ctx := safe.WithContext(ctx)

	group.Go(func(ctx context.Context) error {
		logging.L(ctx).Info("api server listening",
			logging.StringAttr("address", s.cfg.address),
			logging.StringAttr("algorithm", s.cfg.algorithm),
		)
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server: listen")
		}
		return nil
	})

	group.Go(func(ctx context.Context) error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "server: shutdown")
		}
		return nil
	})

	return group.Wait()
}

// Close shuts down the server immediately.
func (s *Server) Close() error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}

// handler assembles the route table behind the logging and metrics
// middleware.
func (s *Server) handler() http.Handler {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.HandlerFunc(http.MethodGet, "/stream", s.handleStream)
	router.HandlerFunc(http.MethodGet, "/v1/:type", s.handleValues)

	return logging.Middleware(
		metrics.RequestDurationMetricHTTPMiddleware(router),
	)
}
