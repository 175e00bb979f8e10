package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog Prometheus metrics.
var (
	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Name:      "pipeline_runs_total",
			Help:      "Total number of filter pipeline runs",
		},
		[]string{"mode", "query"}, // query: "blank" / "set" / "fallback"
	)

	PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cardex",
			Name:      "pipeline_duration_seconds",
			Help:      "Filter pipeline duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode"},
	)

	PipelineResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cardex",
			Name:      "pipeline_result_size",
			Help:      "Records remaining after the query stage",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"mode"},
	)

	FeeParseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Name:      "fee_parse_errors_total",
			Help:      "Fee cells that matched no known format",
		},
		[]string{"company"},
	)

	CatalogRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cardex",
			Name:      "catalog_records",
			Help:      "Records loaded per issuer",
		},
		[]string{"company"},
	)

	ImageSizeCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Name:      "image_size_cache_total",
			Help:      "Image size cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers Prometheus catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(PipelineRunsTotal)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(PipelineResultSize)
	prometheus.MustRegister(FeeParseErrorsTotal)
	prometheus.MustRegister(CatalogRecords)
	prometheus.MustRegister(ImageSizeCacheTotal)
	catalogMetricsRegistered = true
}
