package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weather"

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Weather lookups by outcome.",
	}, []string{"outcome"})

	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Time spent resolving a city and fetching its current weather.",
		Buckets:   prometheus.DefBuckets,
	})

	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the geocoding and forecast APIs.",
	}, []string{"collaborator", "result"})
)

// ObserveLookup records the outcome ("success" or an error kind) and duration of one lookup.
func ObserveLookup(outcome string, elapsed time.Duration) {
	lookupsTotal.WithLabelValues(outcome).Inc()
	lookupDuration.Observe(elapsed.Seconds())
}

// ObserveUpstream records one outbound request to collaborator.
func ObserveUpstream(collaborator string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	upstreamRequestsTotal.WithLabelValues(collaborator, result).Inc()
}
