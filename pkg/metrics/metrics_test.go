package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("appointments", reg)

	m.RecordBookingDecision("create", "accepted")
	m.RecordBookingDecision("create", "accepted")
	m.RecordBookingDecision("create", "rejected_overlap")
	m.RecordExport("auto", errors.New("disk full"))
	m.ObserveHTTPRequest("POST", "/api/v1/appointments", "201", 0.01)
	m.ObserveDBQuery("QueryContext", 0.002, nil)
	m.SetDBPoolStats(3, 1, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingDecisionsTotal.WithLabelValues("create", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingDecisionsTotal.WithLabelValues("create", "rejected_overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("auto", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/appointments", "201")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbIdleConnections.WithLabelValues()))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordBookingDecision("create", "accepted")
	m.RecordExport("manual", nil)
	m.ObserveHTTPRequest("GET", "/healthz", "200", 0.001)
	m.ObserveDBQuery("ExecContext", 0.1, errors.New("boom"))
	m.SetDBPoolStats(1, 1, 0)
}
