package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"schoolactivities/internal/metrics"
)

// routeLabel maps a request path to a bounded-cardinality route label so
// activity names and unmatched scan paths do not explode the metric label space.
func routeLabel(path string) string {
	switch {
	case path == "/" || path == "":
		return "/"
	case path == "/activities" || path == "/healthz" || path == "/metrics":
		return path
	case strings.HasPrefix(path, "/static/"):
		return "/static/"
	case strings.HasPrefix(path, "/swagger/"):
		return "/swagger/"
	case strings.HasSuffix(path, "/signup") && strings.HasPrefix(path, "/activities/"):
		return "/activities/{activityName}/signup"
	case strings.HasSuffix(path, "/unregister") && strings.HasPrefix(path, "/activities/"):
		return "/activities/{activityName}/unregister"
	default:
		return "other"
	}
}

// Metrics records a request counter and duration histogram for every request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := routeLabel(r.URL.Path)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
