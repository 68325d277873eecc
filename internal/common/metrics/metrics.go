// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HandlerInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_invocations_total",
			Help: "Total number of handler invocations",
		},
		[]string{"function"},
	)

	HandlerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_failures_total",
			Help: "Total number of handler invocations that returned an error response",
		},
		[]string{"function", "error_code"},
	)

	HandlerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "handler_duration_seconds",
			Help: "Duration of handler invocations in seconds",
		},
		[]string{"function"},
	)
)
