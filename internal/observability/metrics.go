package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики Prometheus для жизненного цикла жалоб и экранов
type Metrics struct {
	ReportsSubmitted    prometheus.Counter
	ValidationFailures  prometheus.Counter
	SubmissionsInFlight prometheus.Gauge
	EmergencyAlerts     prometheus.Counter
	ToastsShown         *prometheus.CounterVec // label: kind={success,error}

	ScreenActivations *prometheus.CounterVec // label: screen
}

// NewMetrics создает метрики и регистрирует их в переданном реестре
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civic_guardian",
			Name:      "reports_submitted_total",
			Help:      "Total reports committed to the store.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civic_guardian",
			Name:      "report_validation_failures_total",
			Help:      "Total report submissions rejected by validation.",
		}),
		SubmissionsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "civic_guardian",
			Name:      "submissions_in_flight",
			Help:      "Submissions currently waiting on the simulated backend call.",
		}),
		EmergencyAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civic_guardian",
			Name:      "emergency_alerts_total",
			Help:      "Confirmed emergency alerts.",
		}),
		ToastsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civic_guardian",
			Name:      "toasts_shown_total",
			Help:      "Transient messages shown by kind.",
		}, []string{"kind"}),
		ScreenActivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civic_guardian",
			Name:      "screen_activations_total",
			Help:      "Screen activations by target screen.",
		}, []string{"screen"}),
	}

	reg.MustRegister(
		m.ReportsSubmitted,
		m.ValidationFailures,
		m.SubmissionsInFlight,
		m.EmergencyAlerts,
		m.ToastsShown,
		m.ScreenActivations,
	)
	return m
}
