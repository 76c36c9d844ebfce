package metrics

import "github.com/prometheus/client_golang/prometheus"

// RegistrationMetrics exposes counters/histograms for the registration flow.
type RegistrationMetrics struct {
	tokensIssued        *prometheus.CounterVec
	registrationsFailed *prometheus.CounterVec
	registrationLatency *prometheus.HistogramVec
	slipsReprinted      prometheus.Counter
}

func NewRegistrationMetrics(reg prometheus.Registerer) *RegistrationMetrics {
	m := &RegistrationMetrics{
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opd",
			Subsystem: "registration",
			Name:      "tokens_issued_total",
			Help:      "Total tokens issued, by doctor",
		}, []string{"doctor_id"}),
		registrationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opd",
			Subsystem: "registration",
			Name:      "failed_total",
			Help:      "Total failed registrations, by reason",
		}, []string{"reason"}),
		registrationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "opd",
			Subsystem: "registration",
			Name:      "latency_seconds",
			Help:      "Latency of registration processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		slipsReprinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opd",
			Subsystem: "registration",
			Name:      "slips_reprinted_total",
			Help:      "Total slip reprints served",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.tokensIssued, m.registrationsFailed, m.registrationLatency, m.slipsReprinted)
	return m
}

func (m *RegistrationMetrics) ObserveTokenIssued(doctorID string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(doctorID).Inc()
}

func (m *RegistrationMetrics) ObserveFailure(reason string) {
	if m == nil {
		return
	}
	m.registrationsFailed.WithLabelValues(reason).Inc()
}

func (m *RegistrationMetrics) ObserveLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.registrationLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *RegistrationMetrics) ObserveReprint() {
	if m == nil {
		return
	}
	m.slipsReprinted.Inc()
}
