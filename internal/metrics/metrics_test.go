package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProviderCall(t *testing.T) {
	m := New()

	m.RecordProviderCall("create", nil, time.Now())
	m.RecordProviderCall("create", errors.New("boom"), time.Now())
	m.RecordProviderCall("create", errors.New("boom"), time.Now())

	ok, err := m.providerCallsTotal.GetMetricWithLabelValues("create", ResultSuccess)
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(ok))

	failed, err := m.providerCallsTotal.GetMetricWithLabelValues("create", ResultError)
	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(failed))
}

func TestRecordProvisionAndOrphans(t *testing.T) {
	m := New()

	m.RecordProvision("insufficient_balance")
	m.SetOrphans(3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.provisionTotal.WithLabelValues("insufficient_balance")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.orphansFound))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordProvision("ok")
		m.RecordProviderCall("get", nil, time.Now())
		m.RecordLedger("deposit", nil)
		m.RecordReconcile("changed")
		m.SetOrphans(1)
	})
	assert.Nil(t, m.Registry())
}
