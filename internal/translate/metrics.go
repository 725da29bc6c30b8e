package translate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var providerDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "rentrate_translation_provider_duration_seconds",
		Help:    "Duration of outbound LibreTranslate calls by response status",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status"},
)
