package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	upstreamCallsTotal  *prometheus.CounterVec
	quoteTotals         prometheus.Histogram
	offersSentTotal     *prometheus.CounterVec
	dbQueryDuration     *prometheus.HistogramVec
	dbQueryErrors       *prometheus.CounterVec
	dbOpenConnections   prometheus.Gauge
	dbInUseConnections  prometheus.Gauge
}

// New регистрирует метрики в глобальном регистре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		upstreamCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "marketplace_api_calls_total",
			Help:        "Calls to the marketplace API by endpoint and outcome",
			ConstLabels: labels,
		}, []string{"endpoint", "outcome"}),

		quoteTotals: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "offer_quote_total",
			Help:        "Computed custom offer totals in currency units",
			ConstLabels: labels,
			Buckets:     []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),

		offersSentTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "custom_offers_sent_total",
			Help:        "Custom offer submissions by result",
			ConstLabels: labels,
		}, []string{"result"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),

		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the database pool",
			ConstLabels: labels,
		}),

		dbInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveUpstreamCall(endpoint, outcome string) {
	m.upstreamCallsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func (m *Metrics) ObserveQuote(total float64) {
	m.quoteTotals.Observe(total)
}

func (m *Metrics) ObserveOfferSent(result string) {
	m.offersSentTotal.WithLabelValues(result).Inc()
}

// ObserveDBQuery учитывает длительность запроса; при ошибке увеличивает счетчик ошибок
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBPoolStats(open, inUse int) {
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
}
