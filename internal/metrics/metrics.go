package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsim_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymsim_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsim_bookings_total",
			Help: "Total number of bookings admitted",
		},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsim_booking_rejections_total",
			Help: "Total number of booking attempts rejected, by reason",
		},
		[]string{"reason"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsim_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	ReportsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymsim_reports_generated_total",
			Help: "Total number of student reports computed",
		},
	)

	ReportCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymsim_report_cache_requests_total",
			Help: "Report cache lookups, by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking() {
	BookingsTotal.Inc()
}

func RecordBookingRejection(reason string) {
	BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordReport() {
	ReportsGeneratedTotal.Inc()
}

func RecordReportCache(outcome string) {
	ReportCacheHitsTotal.WithLabelValues(outcome).Inc()
}
