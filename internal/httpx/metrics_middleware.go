package httpx

import (
	"net/http"
	"strconv"
	"time"

	"travelogues/internal/metrics"
)

// MetricsMiddleware records request latency labelled by the ServeMux pattern.
// It must wrap the mux directly: the mux sets r.Pattern on the request it is
// handed, and any middleware in between that copies the request hides it.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(rw.statusCode), time.Since(start))
	})
}
