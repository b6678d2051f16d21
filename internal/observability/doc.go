// Package observability groups the catalog's structured logging, Prometheus metrics
// and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog logger construction and context propagation
//   - metrics: registry-size gauges and validation failure counters
//   - tracing: OpenTelemetry tracer and span helper
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("catalog ready")
//
//	    metrics.UpdateArticlesTotal("default", 10)
//	}
package observability
