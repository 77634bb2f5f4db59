package server

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"listing-service/internal/listingerrors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP and listing mutation collectors
type Metrics struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// DefaultMetrics returns the process-wide collectors registered on the
// default prometheus registry
func DefaultMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return metrics
}

// NewMetrics creates the collectors and registers them on registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "listing_product_mutations_total",
			Help: "Product create, update and delete attempts by outcome.",
		}, []string{"operation", "outcome"}),
	}
	registerer.MustRegister(m.requests, m.latency, m.mutations)
	return m
}

// Middleware observes every request under its route template
func (m *Metrics) Middleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// RecordMutation counts one create, update or delete by its outcome
func (m *Metrics) RecordMutation(operation string, err error) {
	m.mutations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, listingerrors.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, listingerrors.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, listingerrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, listingerrors.ErrProductNotFound):
		return "not_found"
	default:
		return "error"
	}
}
