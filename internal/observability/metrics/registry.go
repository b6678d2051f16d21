package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry metrics track the size of each catalog's append-only registries
var (
	// ArticlesTotal tracks the number of registered articles per catalog
	ArticlesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Total number of articles registered in the catalog",
		},
		[]string{"catalog"},
	)

	// MagazinesTotal tracks the number of registered magazines per catalog
	MagazinesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Total number of magazines registered in the catalog",
		},
		[]string{"catalog"},
	)
)

// Validation and query metrics
var (
	// ValidationFailuresTotal counts rejected constructions and assignments
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of rejected entity constructions and field assignments",
		},
		[]string{"entity", "field", "kind"},
	)

	// QueryDuration measures derived query duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of derived catalog queries in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"query"},
	)
)
