// Package metrics exposes Prometheus collectors for the lead pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lead outcomes.
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalidJSON   = "invalid_json"
	OutcomeInvalidField  = "invalid_field"
	OutcomeMissingFields = "missing_fields"
)

// Dispatch results.
const (
	DispatchSent    = "sent"
	DispatchFailed  = "failed"
	DispatchSkipped = "skipped"
)

// LeadMetrics counts lead submissions and notification dispatches.
type LeadMetrics struct {
	leadsTotal       *prometheus.CounterVec
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead_intake",
			Name:      "leads_total",
			Help:      "Lead submissions by outcome",
		}, []string{"outcome"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead_intake",
			Subsystem: "email",
			Name:      "dispatch_total",
			Help:      "Notification email dispatches by provider and result",
		}, []string{"provider", "result"}),
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lead_intake",
			Subsystem: "email",
			Name:      "dispatch_duration_seconds",
			Help:      "Latency of the outbound email provider call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.dispatchTotal, m.dispatchDuration)
	return m
}

func (m *LeadMetrics) ObserveLead(outcome string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDispatch records one dispatch attempt. Skipped dispatches carry no
// latency.
func (m *LeadMetrics) ObserveDispatch(provider, result string, took time.Duration) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(provider, result).Inc()
	if result != DispatchSkipped {
		m.dispatchDuration.WithLabelValues(provider).Observe(took.Seconds())
	}
}
