// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the catalog's metrics:
//   - Registry sizes (articles, magazines) per catalog
//   - Validation failures by entity, field and error kind
//   - Aggregate query durations
//
// All metrics are registered with the Prometheus default registry; the embedding
// application decides whether and how to expose them.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func topPublisher() {
//	    start := time.Now()
//	    // ... scan registries ...
//	    metrics.RecordQueryDuration("top_publisher", time.Since(start))
//	}
package metrics
