package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hieuailearning/ai-legal-assistant/internal/metrics"
)

// NewRouter wires all endpoints onto a chi router.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/", h.RootHandler)
	r.Get("/health", h.HealthHandler)
	r.Get("/cache/stats", h.CacheStatsHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/retrieve", h.RetrieveHandler)
	r.Post("/rag", h.AskHandler)
	r.Post("/agent", h.AgentHandler)
	r.Post("/ingest", h.IngestHandler)

	return r
}

// metricsMiddleware records request count and latency per method, route
// pattern and status code.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = r.URL.Path
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(ww.Status())).Inc()
		metrics.RequestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}
