package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	billsExportedTotal  *prometheus.CounterVec
	barcodeFailures     prometheus.Counter
}

// New создает метрики и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		billsExportedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bills_exported_total",
			Help:        "Total number of bills handed to an output surface.",
			ConstLabels: constLabels,
		}, []string{"format", "result"}),

		barcodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "barcode_encode_failures_total",
			Help:        "Total number of bill numbers that could not be encoded as a barcode.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.billsExportedTotal,
		m.barcodeFailures,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// BillExported учитывает попытку выдачи счёта
func (m *Metrics) BillExported(format, result string) {
	m.billsExportedTotal.WithLabelValues(format, result).Inc()
}

// BarcodeFailed учитывает неудачное построение штрихкода
func (m *Metrics) BarcodeFailed() {
	m.barcodeFailures.Inc()
}
