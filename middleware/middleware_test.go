package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ip812/portfolio/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestTraceIDHeaderMiddleware(t *testing.T) {
	traceID, err := oteltrace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	assert.NoError(t, err)
	spanID, err := oteltrace.SpanIDFromHex("00f067aa0ba902b7")
	assert.NoError(t, err)
	sc := oteltrace.NewSpanContext(oteltrace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(oteltrace.ContextWithSpanContext(r.Context(), sc))
	rec := httptest.NewRecorder()

	TraceIDHeaderMiddleware(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", rec.Header().Get(TraceIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestTraceIDHeaderMiddlewareWithoutSpan(t *testing.T) {
	rec := httptest.NewRecorder()
	TraceIDHeaderMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get(TraceIDHeader))
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	RequestLogger(logger.NewNop())(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
