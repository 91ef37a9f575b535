// Package metrics счетчики уровня сервиса: исходы заказа серверов, вызовы API провайдера,
// операции с балансом и сверка статусов.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "vps"

// Результаты, используемые в метках.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics набор коллекторов сервиса. Nil-значение допустимо: все методы в этом случае ничего не делают.
type Metrics struct {
	registry *prometheus.Registry

	provisionTotal     *prometheus.CounterVec
	providerCallsTotal *prometheus.CounterVec
	providerLatency    *prometheus.HistogramVec
	ledgerOpsTotal     *prometheus.CounterVec
	reconcileTotal     *prometheus.CounterVec
	orphansFound       prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		provisionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provisioning",
				Name:      "requests_total",
				Help:      "Total number of provisioning requests by outcome",
			},
			[]string{"outcome"},
		),
		providerCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "api_calls_total",
				Help:      "Total number of provider API calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "api_latency_seconds",
				Help:      "Latency of provider API calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 8), // 100ms - ~25s
			},
			[]string{"operation"},
		),
		ledgerOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "operations_total",
				Help:      "Total number of ledger operations by transaction type and result",
			},
			[]string{"type", "result"},
		),
		reconcileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "lifecycle",
				Name:      "reconcile_total",
				Help:      "Total number of status reconciliations by result",
			},
			[]string{"result"},
		),
		orphansFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "orphan_instances",
			Help:      "Provider instances labelled by this service without a local record, as of the last sweep",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.provisionTotal,
		m.providerCallsTotal,
		m.providerLatency,
		m.ledgerOpsTotal,
		m.reconcileTotal,
		m.orphansFound,
	)
	return m
}

// Registry реестр для отдачи метрик по HTTP.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RecordProvision(outcome string) {
	if m == nil {
		return
	}
	m.provisionTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordProviderCall(operation string, err error, started time.Time) {
	if m == nil {
		return
	}
	m.providerCallsTotal.WithLabelValues(operation, result(err)).Inc()
	m.providerLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) RecordLedger(transactionType string, err error) {
	if m == nil {
		return
	}
	m.ledgerOpsTotal.WithLabelValues(transactionType, result(err)).Inc()
}

// RecordReconcile result: changed, unchanged или error.
func (m *Metrics) RecordReconcile(res string) {
	if m == nil {
		return
	}
	m.reconcileTotal.WithLabelValues(res).Inc()
}

func (m *Metrics) SetOrphans(n int) {
	if m == nil {
		return
	}
	m.orphansFound.Set(float64(n))
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
