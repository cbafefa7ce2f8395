package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithWriter(&buf),
		WithIsJSON(true),
		WithSetDefault(false),
		WithAddSource(false),
	)

	logger.Info("hello", StringAttr("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "hello" || record["key"] != "value" {
		t.Errorf("Expected msg and attr in record, got %v", record)
	}
}

func TestNewLoggerLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithWriter(&buf),
		WithLevel("warn"),
		WithSetDefault(false),
		WithAddSource(false),
	)

	logger.Debug("quiet")
	logger.Info("quiet")
	logger.Warn("loud")

	if got := buf.String(); strings.Contains(got, "quiet") || !strings.Contains(got, "loud") {
		t.Errorf("Expected only warn output, got %q", got)
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithWriter(&buf),
		WithSetDefault(false),
		WithAddSource(false),
	)

	ctx := ContextWithLogger(context.Background(), logger)
	L(ctx).Info("scoped")

	if !strings.Contains(buf.String(), "scoped") {
		t.Errorf("Expected context logger output, got %q", buf.String())
	}
}

func TestErrAttrNil(t *testing.T) {
	attr := ErrAttr(nil)
	if attr.Value.String() != "error is nil" {
		t.Errorf("Expected nil-error placeholder, got %q", attr.Value.String())
	}
}

func TestMiddlewareRequestID(t *testing.T) {
	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/number", nil))

	if seen == "" {
		t.Fatal("Expected a generated request ID in context")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("Expected header %q to match context ID %q", got, seen)
	}
}

func TestMiddlewareKeepsCallerRequestID(t *testing.T) {
	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/uuid", nil)
	req.Header.Set("X-Request-Id", "caller-chosen")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "caller-chosen" {
		t.Errorf("Expected caller-supplied ID, got %q", seen)
	}
}
