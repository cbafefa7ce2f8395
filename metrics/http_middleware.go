package metrics

import (
	"bufio"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Evavic44/faker/errors"
)

var httpRequestDuration = NewHistogramVec(
	HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"method", "status_code"},
)

// measureHTTPRequestDuration records the duration of HTTP requests.
func measureHTTPRequestDuration(method, statusCode string, start time.Time) {
	httpRequestDuration.
		WithLabelValues(method, statusCode).
		Observe(time.Since(start).Seconds())
}

// RequestDurationMetricHTTPMiddleware tracks HTTP request duration.
func RequestDurationMetricHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{w, http.StatusOK}
		defer func() {
			measureHTTPRequestDuration(r.Method, strconv.Itoa(rw.status), start)
		}()
		next.ServeHTTP(rw, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker if the underlying ResponseWriter supports
// it, so websocket upgrades pass through the middleware.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("metrics: response writer does not support hijacking")
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
