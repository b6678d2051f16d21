package metrics

import "time"

// PrometheusRecorder forwards catalog events to the package-level Prometheus metrics,
// labelling registry gauges with the catalog name.
type PrometheusRecorder struct {
	Catalog string
}

// NewPrometheusRecorder creates a recorder for the named catalog.
func NewPrometheusRecorder(catalog string) *PrometheusRecorder {
	return &PrometheusRecorder{Catalog: catalog}
}

// SetArticles updates the article registry gauge.
func (r *PrometheusRecorder) SetArticles(count int) {
	UpdateArticlesTotal(r.Catalog, count)
}

// SetMagazines updates the magazine registry gauge.
func (r *PrometheusRecorder) SetMagazines(count int) {
	UpdateMagazinesTotal(r.Catalog, count)
}

// ValidationFailed increments the validation failure counter.
func (r *PrometheusRecorder) ValidationFailed(entity, field, kind string) {
	RecordValidationFailure(entity, field, kind)
}

// QueryObserved records a query duration.
func (r *PrometheusRecorder) QueryObserved(query string, duration time.Duration) {
	RecordQueryDuration(query, duration)
}

// NoOpRecorder discards every event.
//
// This implementation is useful for tests and for embedding applications
// that do not collect metrics.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder instance.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// SetArticles is a no-op implementation.
func (r *NoOpRecorder) SetArticles(int) {}

// SetMagazines is a no-op implementation.
func (r *NoOpRecorder) SetMagazines(int) {}

// ValidationFailed is a no-op implementation.
func (r *NoOpRecorder) ValidationFailed(string, string, string) {}

// QueryObserved is a no-op implementation.
func (r *NoOpRecorder) QueryObserved(string, time.Duration) {}
