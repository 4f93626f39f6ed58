package middleware

import (
	"net/http"

	oteltrace "go.opentelemetry.io/otel/trace"
)

const TraceIDHeader = "X-Trace-Id"

func TraceIDHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc := oteltrace.SpanContextFromContext(r.Context())
		if sc.HasTraceID() {
			w.Header().Set(TraceIDHeader, sc.TraceID().String())
		}
		next.ServeHTTP(w, r)
	})
}
