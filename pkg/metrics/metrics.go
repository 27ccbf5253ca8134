package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BookingsCreated   *prometheus.CounterVec
	BookingsDecided   *prometheus.CounterVec
	OverCapacitySlots prometheus.Gauge
	CacheLookups      *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает и регистрирует метрики в указанном регистре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}, []string{"db"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}, []string{"db"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}, []string{"db"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_requests_created_total",
			Help:        "Booking requests created by customers",
			ConstLabels: labels,
		}, []string{"service_type"}),
		BookingsDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_requests_decided_total",
			Help:        "Booking requests approved or rejected by admins",
			ConstLabels: labels,
		}, []string{"status"}),
		OverCapacitySlots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "occupancy_over_capacity_slots",
			Help:        "Over-capacity (date, service) slots in the last computed occupancy",
			ConstLabels: labels,
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "occupancy_cache_lookups_total",
			Help:        "Occupancy cache lookups by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.BookingsCreated,
		m.BookingsDecided,
		m.OverCapacitySlots,
		m.CacheLookups,
	)

	return m
}

// ObserveHTTP записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveQuery записывает длительность запроса к БД
func (m *Metrics) ObserveQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// BookingCreated увеличивает счетчик созданных заявок
func (m *Metrics) BookingCreated(serviceType string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(serviceType).Inc()
}

// BookingDecided увеличивает счетчик решений по заявкам
func (m *Metrics) BookingDecided(status string) {
	if m == nil {
		return
	}
	m.BookingsDecided.WithLabelValues(status).Inc()
}

// SetOverCapacitySlots выставляет количество перегруженных слотов
func (m *Metrics) SetOverCapacitySlots(n int) {
	if m == nil {
		return
	}
	m.OverCapacitySlots.Set(float64(n))
}

// CacheLookup учитывает попадание/промах кэша
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
