package translations

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentrate_translation_cache_hits_total",
		Help: "Number of translation requests served from the cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentrate_translation_cache_misses_total",
		Help: "Number of translation requests that had to call the provider",
	})

	providerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentrate_translation_provider_failures_total",
			Help: "Number of failed provider calls by failure kind",
		},
		[]string{"kind"},
	)

	sameLanguageShortCircuits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentrate_translation_same_language_total",
		Help: "Number of translation requests short-circuited because source and target match",
	})
)
