package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики базы данных
	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec
	DBConnectionsWait *prometheus.CounterVec

	// Бизнес-метрики бронирований
	BookingsAdmittedTotal *prometheus.CounterVec
	BookingsRejectedTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default-регистре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query duration in seconds",
				ConstLabels: constLabels,
				Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"operation"},
		),
		DBQueryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_query_errors_total",
				Help:        "Total number of database query errors",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBConnectionsOpen: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections_open",
				Help:        "Number of open database connections",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		DBConnectionsIdle: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections_idle",
				Help:        "Number of idle database connections",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		DBConnectionsWait: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_connections_wait_total",
				Help:        "Total number of connection waits",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		BookingsAdmittedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_admitted_total",
				Help:        "Total number of successfully admitted bookings",
				ConstLabels: constLabels,
			},
			[]string{"time_of_day"},
		),
		BookingsRejectedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_rejected_total",
				Help:        "Total number of rejected booking attempts",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
	}
}

// BookingAdmitted учитывает успешно допущенное бронирование
func (m *Metrics) BookingAdmitted(timeOfDay string) {
	m.BookingsAdmittedTotal.WithLabelValues(timeOfDay).Inc()
}

// BookingRejected учитывает отклоненную попытку бронирования
func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejectedTotal.WithLabelValues(reason).Inc()
}
