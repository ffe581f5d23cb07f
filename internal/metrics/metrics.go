// Package metrics exposes the engine's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bordful_source_fetches_total",
		Help: "Job source fetch attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	JobsCached = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bordful_jobs_cached",
		Help: "Active jobs currently held in the cache.",
	})

	Subscriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bordful_subscriptions_total",
		Help: "Subscription attempts by outcome.",
	}, []string{"outcome"})
)
