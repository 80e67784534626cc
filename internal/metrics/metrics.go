// Package metrics exposes Prometheus collectors for calculations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts calculations by outcome and cache use.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ferias_calculations_total",
			Help: "Calculations processed by outcome",
		},
		[]string{"outcome", "cached"},
	)

	// ViolationsTotal counts validation violations by input field and code.
	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ferias_validation_violations_total",
			Help: "Validation violations by field and code",
		},
		[]string{"field", "code"},
	)

	// CalculationDuration tracks time spent per calculation.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ferias_calculation_duration_seconds",
			Help:    "Time spent computing a calculation",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	// HTTPRequestsTotal counts shell requests by path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ferias_http_requests_total",
			Help: "HTTP requests by path and status",
		},
		[]string{"path", "status"},
	)
)

// ObserveCalculation records one finished calculation.
func ObserveCalculation(outcome string, cached bool, elapsed time.Duration) {
	c := "false"
	if cached {
		c = "true"
	}
	CalculationsTotal.WithLabelValues(outcome, c).Inc()
	CalculationDuration.Observe(elapsed.Seconds())
}

// ObserveViolation records one validation violation.
func ObserveViolation(field, code string) {
	ViolationsTotal.WithLabelValues(field, code).Inc()
}
