// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used throughout the catalog.
//
// Key features:
//   - JSON output for machines, colourised text output (tint) for terminals
//   - Configurable log levels
//   - Context-aware logging
//   - Entity tagging
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("catalog started", slog.String("name", "default"))
//	}
//
//	func register(ctx context.Context, m *entity.Magazine) {
//	    logger := logging.WithEntity(logging.FromContext(ctx), "magazine", m.ID.String())
//	    logger.Debug("magazine registered")
//	}
package logging
