package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercenter_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercenter_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercenter_validation_failures_total",
			Help: "Total number of rejected submissions.",
		},
		[]string{"entity"},
	)
	ExportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careercenter_export_duration_seconds",
			Help:    "Duration of each vacancy export in seconds.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 15},
		},
	)
	ExportedVacanciesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careercenter_exported_vacancies_total",
			Help: "Total number of vacancy rows written to exports.",
		},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(ValidationFailures)
	prometheus.MustRegister(ExportDuration)
	prometheus.MustRegister(ExportedVacanciesCounter)
}
