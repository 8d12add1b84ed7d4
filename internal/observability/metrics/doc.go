// Package metrics provides the Prometheus collectors of the application.
//
// Collectors are registered with the default registry through promauto and
// exposed on /metrics. Recorder helpers keep label handling in one place:
//
//	metrics.RecordArticleStored()
//	metrics.RecordUseCaseFailure("get_article", "not_found")
//	metrics.RecordDBQuery("select_article", time.Since(start))
package metrics
