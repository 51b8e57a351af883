package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request and records the
// request metrics under the matched route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		if lw.status == 0 {
			lw.status = http.StatusOK
		}

		route := routePattern(r)
		if h.metrics != nil {
			h.metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(lw.status)).Inc()
			h.metrics.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
		}

		log.Info().
			Str("uri", uri).
			Str("route", route).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the chi pattern matched by r, so that metric labels
// stay bounded regardless of path parameters.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unknown"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unknown"
}
