// Package metrics exposes the service counters on a private Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel_block"

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Registry struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	touches       *prometheus.CounterVec
	notifications *prometheus.CounterVec
	codesAssigned prometheus.Counter
	requests      *prometheus.CounterVec
	durations     *prometheus.HistogramVec
}

func New() *Registry {
	registry := prometheus.NewRegistry()
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_operations_total",
		Help:      "Reservation lifecycle operations by outcome.",
	}, []string{"operation", "outcome"})
	touches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_touches_total",
		Help:      "Post-commit quote touches by outcome.",
	}, []string{"outcome"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmation_notifications_total",
		Help:      "Confirmation code hand-offs by driver and outcome.",
	}, []string{"driver", "outcome"})
	codesAssigned := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_codes_assigned_total",
		Help:      "Reservations stamped with a confirmation code.",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	registry.MustRegister(operations, touches, notifications, codesAssigned, requests, durations)

	return &Registry{
		registry:      registry,
		operations:    operations,
		touches:       touches,
		notifications: notifications,
		codesAssigned: codesAssigned,
		requests:      requests,
		durations:     durations,
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

func (r *Registry) ObserveOperation(operation string, err error) {
	r.operations.WithLabelValues(operation, outcome(err)).Inc()
}

func (r *Registry) ObserveTouch(err error) {
	r.touches.WithLabelValues(outcome(err)).Inc()
}

func (r *Registry) ObserveNotification(driver string, err error) {
	r.notifications.WithLabelValues(driver, outcome(err)).Inc()
}

func (r *Registry) AddCodesAssigned(n int) {
	if n > 0 {
		r.codesAssigned.Add(float64(n))
	}
}

// Middleware records every request under its route template, so ids do not explode the label set.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		r.durations.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer is exposed for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
