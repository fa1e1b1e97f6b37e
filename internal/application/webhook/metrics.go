package webhook

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcome labels.
const (
	OutcomeForbidden        = "forbidden"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeMalformedPayload = "malformed_payload"
	OutcomeUnrecognized     = "unrecognized"
	OutcomeSuccess          = "success"
	OutcomeFailure          = "failure"
	OutcomeCallbackError    = "callback_error"
)

// Metrics counts dispatch outcomes. A nil *Metrics records nothing.
type Metrics struct {
	requests         *prometheus.CounterVec
	callbacks        *prometheus.CounterVec
	callbackDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletpay_webhook_requests_total",
				Help: "Total number of webhook requests by outcome",
			},
			[]string{"outcome"},
		),
		callbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletpay_webhook_callbacks_total",
				Help: "Total number of callback invocations by category and result",
			},
			[]string{"category", "result"},
		),
		callbackDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletpay_webhook_callback_duration_seconds",
				Help:    "Callback execution latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"category"},
		),
	}
}

func (m *Metrics) observeRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeCallback(category Category, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.callbacks.WithLabelValues(category.String(), result).Inc()
	m.callbackDuration.WithLabelValues(category.String()).Observe(elapsed.Seconds())
}
