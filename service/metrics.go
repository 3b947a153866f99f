package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ResponsesSubmitted prometheus.Counter
	ResponsesAccepted  prometheus.Counter
	ResponsesRejected  prometheus.Counter
	MessagesSent       prometheus.Counter
	FanoutFailures     prometheus.Counter
}

// NewMetrics registers the service counters in reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResponsesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parcelmate",
			Name:      "responses_submitted_total",
			Help:      "Number of responses submitted to posts.",
		}),
		ResponsesAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parcelmate",
			Name:      "responses_accepted_total",
			Help:      "Number of responses accepted by post owners.",
		}),
		ResponsesRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parcelmate",
			Name:      "responses_rejected_total",
			Help:      "Number of pending responses rejected by an acceptance or a post deletion.",
		}),
		MessagesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parcelmate",
			Name:      "messages_sent_total",
			Help:      "Number of messages sent.",
		}),
		FanoutFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parcelmate",
			Name:      "message_fanout_failures_total",
			Help:      "Number of failed message publications to realtime topics.",
		}),
	}
}
