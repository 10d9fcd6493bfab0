package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ricirt/notification-pattern/internal/domain"
	"github.com/ricirt/notification-pattern/internal/service"
)

// Outcome label values.
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultCancelled = "cancelled"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	OperationsTotal     *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
	OperationLatency    *prometheus.HistogramVec
	RateLimitedRequests prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "operations_total",
			Help: "Total number of operations by result (success, failure, cancelled).",
		}, []string{"result"}),

		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "operation_notifications_total",
			Help: "Notifications attached to operation outcomes, by severity and code.",
		}, []string{"severity", "code"}),

		OperationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "operation_duration_seconds",
			Help:    "Time spent producing an outcome, including the simulated I/O step.",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),

		RateLimitedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.OperationsTotal,
		m.NotificationsTotal,
		m.OperationLatency,
		m.RateLimitedRequests,
	)

	return m
}

// ServiceHooks returns the callbacks expected by service.Hooks.
// Centralises the prometheus observation calls so the service stays import-free.
func (m *Metrics) ServiceHooks() service.Hooks {
	return service.Hooks{
		OnOutcome: func(o domain.Outcome, elapsed time.Duration) {
			result := ResultSuccess
			if o.IsFailure() {
				result = ResultFailure
			}
			m.OperationsTotal.WithLabelValues(result).Inc()
			m.OperationLatency.WithLabelValues(result).Observe(elapsed.Seconds())
			for _, n := range o.Notifications() {
				m.NotificationsTotal.WithLabelValues(n.Severity.String(), n.Code).Inc()
			}
		},
		OnCancelled: func(elapsed time.Duration) {
			m.OperationsTotal.WithLabelValues(ResultCancelled).Inc()
			m.OperationLatency.WithLabelValues(ResultCancelled).Observe(elapsed.Seconds())
		},
	}
}

// OnRateLimited is the callback for the rate limiting middleware.
func (m *Metrics) OnRateLimited() {
	m.RateLimitedRequests.Inc()
}
