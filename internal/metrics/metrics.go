// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foryou_feed"

var (
	// RankRequests counts attempts to obtain a personalized ordering from
	// the remote ranking service.
	RankRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ranking",
		Name:      "requests_total",
		Help:      "Remote ranking requests attempted.",
	})

	// RankFallbacks counts feed responses served with the points-sorted
	// fallback ordering instead of a personalized one.
	RankFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ranking",
		Name:      "fallbacks_total",
		Help:      "Feed responses served via the fallback ordering, by reason.",
	}, []string{"reason"})

	EventsForwarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engagement",
		Name:      "events_forwarded_total",
		Help:      "Engagement events successfully forwarded to the ranking service.",
	})

	EventForwardFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engagement",
		Name:      "event_forward_failures_total",
		Help:      "Engagement event forwarding attempts that failed.",
	})

	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engagement",
		Name:      "events_dropped_total",
		Help:      "Engagement events dropped because the forwarding queue was full.",
	})
)

// Fallback reasons.
const (
	ReasonUnconfigured = "unconfigured"
	ReasonRemoteError  = "remote_error"
)
