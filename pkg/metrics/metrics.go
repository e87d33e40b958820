package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Metrics коллектор метрик сервиса.
// Все методы безопасны для nil-получателя: сервис работает и с выключенными метриками.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingDecisionsTotal *prometheus.CounterVec
	exportsTotal          *prometheus.CounterVec

	dbQueryDuration    *prometheus.HistogramVec
	dbQueryErrorsTotal *prometheus.CounterVec
	dbOpenConnections  *prometheus.GaugeVec
	dbInUseConnections *prometheus.GaugeVec
	dbIdleConnections  *prometheus.GaugeVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route, method and status",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		bookingDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "appointments",
			Name:        "decisions_total",
			Help:        "Conflict policy decisions by operation and verdict",
			ConstLabels: constLabels,
		}, []string{"operation", "verdict"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "appointments",
			Name:        "exports_total",
			Help:        "Spreadsheet exports by trigger and status",
			ConstLabels: constLabels,
		}, []string{"trigger", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency by operation",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "query_errors_total",
			Help:        "Database query errors by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}, []string{}),
		dbInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),
		dbIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db",
			Name:        "idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingDecisionsTotal,
		m.exportsTotal,
		m.dbQueryDuration,
		m.dbQueryErrorsTotal,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordBookingDecision учитывает решение политики конфликтов (create/update)
func (m *Metrics) RecordBookingDecision(operation, verdict string) {
	if m == nil {
		return
	}
	m.bookingDecisionsTotal.WithLabelValues(operation, verdict).Inc()
}

// RecordExport учитывает выгрузку в таблицу (trigger: manual/auto)
func (m *Metrics) RecordExport(trigger string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.exportsTotal.WithLabelValues(trigger, status).Inc()
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.dbQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues().Set(float64(open))
	m.dbInUseConnections.WithLabelValues().Set(float64(inUse))
	m.dbIdleConnections.WithLabelValues().Set(float64(idle))
}
