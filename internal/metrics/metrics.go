// Package metrics holds the Prometheus collectors of the concierge.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "filmbuff"

// Label values.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	OutcomeAnswered = "answered"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"

	RetryImproved = "improved"
	RetryKept     = "kept_original"

	StatusOK      = "ok"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// QueryBuckets cover a cache hit (ms) up to a multi-agent run (minutes).
var QueryBuckets = []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 20, 30, 60, 90, 120, 180}

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result",
		},
		[]string{"result"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Queries rejected by the sliding-window limiter",
		},
	)

	Queries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Queries by intent category and outcome",
		},
		[]string{"category", "outcome"},
	)

	Retries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_total",
			Help:      "Thin-result retries by outcome",
		},
		[]string{"outcome"},
	)

	CapabilityInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_invocations_total",
			Help:      "Capability handler invocations by capability and status",
		},
		[]string{"capability", "status"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "End-to-end query latency in seconds",
			Buckets:   QueryBuckets,
		},
		[]string{"category"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)
)

// RecordCacheLookup counts a hit or a miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues(ResultHit).Inc()
		return
	}
	CacheLookups.WithLabelValues(ResultMiss).Inc()
}

// RecordQuery counts a finished query and observes its latency.
func RecordQuery(category, outcome string, elapsed time.Duration) {
	if category == "" {
		category = "none"
	}
	Queries.WithLabelValues(category, outcome).Inc()
	QueryDuration.WithLabelValues(category).Observe(elapsed.Seconds())
}

// RecordRetry counts a retry outcome.
func RecordRetry(improved bool) {
	if improved {
		Retries.WithLabelValues(RetryImproved).Inc()
		return
	}
	Retries.WithLabelValues(RetryKept).Inc()
}

// RecordInvocation counts one capability handler call.
func RecordInvocation(capability, status string) {
	CapabilityInvocations.WithLabelValues(capability, status).Inc()
}

// Middleware records one sample per HTTP request, keyed by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
