// Package metrics exposes Prometheus counters for the payment pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons for payments that never reach a gateway.
const (
	ReasonMissingField  = "missing_field"
	ReasonPolicy        = "policy_violation"
	ReasonUnknownMethod = "unknown_method"
)

var (
	paymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "Payments dispatched to a gateway, by final status",
	}, []string{"status"})

	paymentsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_rejected_total",
		Help: "Payment intents rejected before dispatch, by reason",
	}, []string{"reason"})
)

func PaymentProcessed(status string) {
	paymentsProcessed.WithLabelValues(status).Inc()
}

func PaymentRejected(reason string) {
	paymentsRejected.WithLabelValues(reason).Inc()
}
