package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "grahafitness",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grahafitness",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "grahafitness",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	checkins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grahafitness",
			Subsystem: "members",
			Name:      "checkins_total",
			Help:      "Check-in attempts by outcome.",
		},
		[]string{"outcome"},
	)

	membershipsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "grahafitness",
			Subsystem: "members",
			Name:      "expired_total",
			Help:      "Memberships flipped to expired by reconciliation.",
		},
	)

	stockMovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grahafitness",
			Subsystem: "stock",
			Name:      "movements_total",
			Help:      "Stock movements applied, by type and whether the quantity was clamped.",
		},
		[]string{"type", "clamped"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		checkins,
		membershipsExpired,
		stockMovements,
	)
}

func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

// ObserveHTTP records one finished request. path must be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveHTTP(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func RecordCheckin(accepted bool) {
	if accepted {
		checkins.WithLabelValues("accepted").Inc()
		return
	}
	checkins.WithLabelValues("rejected").Inc()
}

func RecordExpired(n int) {
	if n > 0 {
		membershipsExpired.Add(float64(n))
	}
}

func RecordStockMovement(kind string, clamped bool) {
	stockMovements.WithLabelValues(kind, strconv.FormatBool(clamped)).Inc()
}
