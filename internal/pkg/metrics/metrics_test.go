package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/orders/:number", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	for _, path := range []string{"/orders/ORD-1", "/orders/ORD-2", "/fail"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests.WithLabelValues("/orders/:number", "GET", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/fail", "GET", "418")), 0)
}

func TestRecordOrderEvent(t *testing.T) {
	m := metrics.NewServerMetrics(prometheus.NewRegistry())

	m.RecordOrderEvent(metrics.EventCreated, 1)
	m.RecordOrderEvent(metrics.EventBulkConfirmed, 3)
	m.RecordOrderEvent(metrics.EventBulkConfirmed, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderEvents.WithLabelValues(metrics.EventCreated)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.OrderEvents.WithLabelValues(metrics.EventBulkConfirmed)), 0)
}

func TestHandler_ServesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(reg)
	m.RecordOrderEvent(metrics.EventConfirmed, 1)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `ordering_orders_events_total{event="confirmed"} 1`))
}

func TestRecordOrderStats(t *testing.T) {
	m := metrics.NewServerMetrics(prometheus.NewRegistry())

	m.RecordOrderStats(4, 2, 450.5)

	assert.InDelta(t, 4, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("pending")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("confirmed")), 0)
	assert.InDelta(t, 450.5, testutil.ToFloat64(m.ConfirmedRevenue), 0.001)
}
