package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   prometheus.Counter
	BookingsCancelledTotal prometheus.Counter
	BookingsExpiredTotal   prometheus.Counter
	DayResetsTotal         prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		BookingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of bookings cancelled by users",
			ConstLabels: constLabels,
		}),

		BookingsExpiredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_expired_total",
			Help:        "Total number of bookings removed by the expiry sweep",
			ConstLabels: constLabels,
		}),

		DayResetsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "day_resets_total",
			Help:        "Total number of full-day booking resets",
			ConstLabels: constLabels,
		}),
	}
}

// Методы-рекордеры nil-safe: при выключенных метриках сервисам передается nil.

// RecordBookingCreated учитывает созданное бронирование
func (m *Metrics) RecordBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.Inc()
}

// RecordBookingCancelled учитывает отмененное пользователем бронирование
func (m *Metrics) RecordBookingCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelledTotal.Inc()
}

// RecordBookingsExpired учитывает удаленные по истечении времени бронирования
func (m *Metrics) RecordBookingsExpired(count int64) {
	if m == nil || count == 0 {
		return
	}
	m.BookingsExpiredTotal.Add(float64(count))
}

// RecordDayReset учитывает полный сброс дня
func (m *Metrics) RecordDayReset() {
	if m == nil {
		return
	}
	m.DayResetsTotal.Inc()
}
