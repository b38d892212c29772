// Package metrics exposes Prometheus instrumentation for the HTTP surface and
// the order lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

// Order lifecycle events counted by OrderEvents.
const (
	EventCreated       = "created"
	EventUpdated       = "updated"
	EventConfirmed     = "confirmed"
	EventBulkConfirmed = "bulk_confirmed"
)

type ServerMetrics struct {
	Requests         *prometheus.CounterVec
	LatencyMS        *prometheus.HistogramVec
	OrderEvents      *prometheus.CounterVec
	OrdersByStatus   *prometheus.GaugeVec
	ConfirmedRevenue prometheus.Gauge
}

// NewServerMetrics registers the collectors with reg. Tests pass a fresh
// prometheus.NewRegistry(); main passes prometheus.DefaultRegisterer.
func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler", "method"})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "events_total",
		Help:      "Orders created, updated and confirmed.",
	}, []string{"event"})

	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "current",
		Help:      "Stored orders per status at the last stats report.",
	}, []string{"status"})
	revenue := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "confirmed_revenue",
		Help:      "Sum of confirmed order totals at the last stats report.",
	})

	reg.MustRegister(requests, latency, events, byStatus, revenue)
	return &ServerMetrics{
		Requests:         requests,
		LatencyMS:        latency,
		OrderEvents:      events,
		OrdersByStatus:   byStatus,
		ConfirmedRevenue: revenue,
	}
}

// Middleware records one request count and latency sample per request, keyed
// by the route pattern rather than the raw path.
func (m *ServerMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			handler := c.Path()
			if handler == "" {
				handler = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.Requests.WithLabelValues(handler, method, status).Inc()
			m.LatencyMS.WithLabelValues(handler, method).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}

// RecordOrderEvent adds n to the counter of the given lifecycle event.
func (m *ServerMetrics) RecordOrderEvent(event string, n int) {
	if n <= 0 {
		return
	}
	m.OrderEvents.WithLabelValues(event).Add(float64(n))
}

// RecordOrderStats publishes a stats snapshot.
func (m *ServerMetrics) RecordOrderStats(pending, confirmed int64, revenue float64) {
	m.OrdersByStatus.WithLabelValues("pending").Set(float64(pending))
	m.OrdersByStatus.WithLabelValues("confirmed").Set(float64(confirmed))
	m.ConfirmedRevenue.Set(revenue)
}

// Handler serves the collectors registered on g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
