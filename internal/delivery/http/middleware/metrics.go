package middleware

import (
	"net/http"
	"strconv"
	"time"

	"extracurricular/internal/metrics"
)

// Metrics records request duration labeled by the matched ServeMux pattern.
// It must wrap the mux with the same *http.Request the mux receives, since the
// mux records the pattern on that request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).
			Observe(time.Since(start).Seconds())
	})
}
