package lookup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ytget/zip-lookup/internal/model"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ziplookup_lookups_total",
		Help: "The total number of completed lookups by outcome",
	}, []string{"outcome"})
	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ziplookup_lookup_duration_seconds",
		Help:    "Time spent waiting for the postal service",
		Buckets: prometheus.DefBuckets,
	})
	lookupsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ziplookup_lookups_in_flight",
		Help: "Dispatched lookups that have not completed yet",
	})
	ignoredDispatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ziplookup_ignored_dispatches_total",
		Help: "Dispatches dropped because the value was not a 5 digit code",
	})
)

func observeResult(result model.LookupResult, seconds float64) {
	lookupsTotal.WithLabelValues(result.Outcome.String()).Inc()
	lookupDuration.Observe(seconds)
}
