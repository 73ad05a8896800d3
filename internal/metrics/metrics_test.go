package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SweepsTotal.Inc()
	m.ChecksTotal.Add(3)
	m.CheckErrorsTotal.Inc()
	m.ListingsSeenTotal.Add(10)
	m.ListingsNewTotal.Add(2)
	m.NotificationsSentTotal.Add(2)
	m.NotificationsFailedTotal.Inc()
	m.CatalogRequestsTotal.WithLabelValues("ok").Inc()
	m.CatalogDailyUsage.Set(42)
	m.SchedulerNextRun.WithLabelValues("sweep").Set(1700000000)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/watches", "200").Inc()
	m.SweepDuration.Observe(1.5)
	m.HTTPRequestDuration.WithLabelValues("GET", "/api/v1/watches").Observe(0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ChecksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckErrorsTotal))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.ListingsSeenTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ListingsNewTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsSentTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsFailedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogRequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.CatalogDailyUsage))

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	for _, want := range []string{
		"vw_sweep_duration_seconds",
		"vw_sweeps_total",
		"vw_checks_total",
		"vw_check_errors_total",
		"vw_listings_seen_total",
		"vw_listings_new_total",
		"vw_notifications_sent_total",
		"vw_notifications_failed_total",
		"vw_catalog_requests_total",
		"vw_catalog_daily_usage",
		"vw_scheduler_next_run_timestamp_seconds",
		"vw_http_requests_total",
		"vw_http_request_duration_seconds",
	} {
		assert.NotNil(t, byName[want], "missing metric family %s", want)
	}

	sched := byName["vw_scheduler_next_run_timestamp_seconds"]
	require.NotNil(t, sched)
	assert.Equal(t, dto.MetricType_GAUGE, sched.GetType())
	require.Len(t, sched.GetMetric(), 1)
	require.Len(t, sched.GetMetric()[0].GetLabel(), 1)
	assert.Equal(t, "job", sched.GetMetric()[0].GetLabel()[0].GetName())
	assert.Equal(t, "sweep", sched.GetMetric()[0].GetLabel()[0].GetValue())
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())

	a.SweepsTotal.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SweepsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SweepsTotal))
}
