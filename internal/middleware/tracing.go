package middleware

import (
	"net/http"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Route tags the server span with the chi route pattern once routing is
// done. otelhttp wraps the router and never sees the pattern itself.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		span := trace.SpanFromContext(r.Context())
		span.SetAttributes(semconv.HTTPRoute(routePattern(r)))
		span.SetName(r.Method + " " + routePattern(r))
	})
}
