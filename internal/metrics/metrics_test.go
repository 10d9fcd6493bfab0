package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ricirt/notification-pattern/internal/domain"
	"github.com/ricirt/notification-pattern/internal/metrics"
	"github.com/ricirt/notification-pattern/internal/service"
)

func TestServiceHooks(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	hooks := m.ServiceHooks()

	warned, err := domain.SuccessWith(service.DateLessThanToday)
	assert.NoError(t, err)

	hooks.OnOutcome(domain.Success(), time.Millisecond)
	hooks.OnOutcome(warned, time.Millisecond)
	hooks.OnOutcome(domain.Notify(service.InvalidOperation), time.Millisecond)
	hooks.OnCancelled(time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues(metrics.ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues(metrics.ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues(metrics.ResultCancelled)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("warning", "Service.DateLessThanToday")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("error", "Service.InvalidOperation")))
}

func TestOnRateLimited(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.OnRateLimited()
	m.OnRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateLimitedRequests))
}
