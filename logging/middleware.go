package logging

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDLogKey = "request_id"

// Middleware assigns every request an ID and stores a request-scoped logger
// carrying it, together with the endpoint, in the request context. An
// X-Request-Id header supplied by the caller wins over a generated ID.
func Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		mLogger := L(ctx).With(
			StringAttr("endpoint", r.URL.RequestURI()),
			StringAttr(requestIDLogKey, requestID),
		)

		ctx = ContextWithLogger(ctx, mLogger)
		ctx = ContextWithRequestID(ctx, requestID)

		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}
