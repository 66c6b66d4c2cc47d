package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAccountOperation = "account_operation"
	MetricSearchRequest    = "search_request"
	MetricBalanceMovement  = "balance_movement"
)

type PrometheusMetrics struct {
	accountOperations *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	searchRequests    *prometheus.CounterVec
	balanceMovements  *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the service metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		accountOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total number of account lifecycle operations by outcome",
			},
			[]string{"operation", "result"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_operation_duration_seconds",
				Help:    "Account lifecycle operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		searchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Total number of paginated search requests",
			},
			[]string{"entity", "status"},
		),
		balanceMovements: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "balance_movement_amount",
				Help:    "Deposited and withdrawn amounts in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"direction", "currency"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAccountOperation:
		if operation := tags["operation"]; operation != "" {
			m.accountOperations.WithLabelValues(operation, tags["result"]).Inc()
		}
	case MetricSearchRequest:
		if entity := tags["entity"]; entity != "" {
			m.searchRequests.WithLabelValues(entity, tags["status"]).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricBalanceMovement {
		m.balanceMovements.WithLabelValues(tags["direction"], tags["currency"]).Observe(value)
	}
}
