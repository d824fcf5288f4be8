package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// RequestLatency observes per-request latency by method and route.
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "request_latency_seconds",
			Help: "Histogram of request latency",
		},
		[]string{"method", "endpoint"},
	)

	// LLMTokens counts tokens consumed by LLM API calls, labeled
	// input/output/total.
	LLMTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total tokens used in LLM API calls",
		},
		[]string{"type"},
	)

	// CacheHitsTotal counts answers served from the response cache.
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rag_cache_hits_total",
			Help: "Total response cache hits",
		},
	)

	// CacheMissesTotal counts questions that missed the response cache.
	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rag_cache_misses_total",
			Help: "Total response cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(LLMTokens)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
