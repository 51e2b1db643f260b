package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking workflows as reported in the bookings counter.
const (
	WorkflowAdminBook = "admin_book"
	WorkflowAdminEdit = "admin_edit"
	WorkflowSelfBook  = "self_book"
)

// ClinicMetrics exposes counters and histograms for the front-desk API.
type ClinicMetrics struct {
	gatherer      prometheus.Gatherer
	requestsTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	bookingsTotal *prometheus.CounterVec
}

// NewClinicMetrics registers the collectors on reg. A nil reg gets a fresh
// registry so repeated construction in tests never collides.
func NewClinicMetrics(reg *prometheus.Registry) *ClinicMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &ClinicMetrics{
		gatherer: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "appointments",
			Name:      "bookings_total",
			Help:      "Booking workflows by outcome",
		}, []string{"workflow", "outcome"}),
	}
	reg.MustRegister(m.requestsTotal, m.latency, m.bookingsTotal)
	return m
}

func (m *ClinicMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBooking counts one run of a booking workflow.
func (m *ClinicMetrics) ObserveBooking(workflow string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.bookingsTotal.WithLabelValues(workflow, outcome).Inc()
}

// Middleware records every request under its route template, so ids in the
// path do not create new series. Unmatched paths are grouped as "unmatched".
func (m *ClinicMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ClinicMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
