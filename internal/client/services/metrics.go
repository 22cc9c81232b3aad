package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_entries_created_total",
		Help: "Entries accepted by the creation pipeline.",
	}, []string{"type"})

	entriesRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_entries_rejected_total",
		Help: "Creation payloads rejected by validation.",
	})

	statusTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_status_toggles_total",
		Help: "Claim status changes, by resulting status.",
	}, []string{"status"})

	viewCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_view_cache_hits_total",
		Help: "Query view cache hits.",
	})

	viewCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_view_cache_misses_total",
		Help: "Query view cache misses.",
	})

	evaluateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lostfound_query_evaluate_seconds",
		Help:    "Time spent filtering and sorting the collection.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
)
