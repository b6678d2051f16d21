// Package tracing provides OpenTelemetry tracing integration.
//
// The catalog does not install a TracerProvider; spans are recorded by whatever
// provider the embedding application registers with otel.SetTracerProvider and are
// no-ops otherwise.
//
// Example usage:
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "catalog.top_publisher")
//	    defer span.End()
//	    // ...
//	}
package tracing
