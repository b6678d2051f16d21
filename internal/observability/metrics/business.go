package metrics

import "time"

// UpdateArticlesTotal sets the article registry size for a catalog.
func UpdateArticlesTotal(catalog string, count int) {
	ArticlesTotal.WithLabelValues(catalog).Set(float64(count))
}

// UpdateMagazinesTotal sets the magazine registry size for a catalog.
func UpdateMagazinesTotal(catalog string, count int) {
	MagazinesTotal.WithLabelValues(catalog).Set(float64(count))
}

// RecordValidationFailure records a rejected value.
// Kind should be "type" or "value".
func RecordValidationFailure(entity, field, kind string) {
	ValidationFailuresTotal.WithLabelValues(entity, field, kind).Inc()
}

// RecordQueryDuration records the time taken by a derived query.
func RecordQueryDuration(query string, duration time.Duration) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}
