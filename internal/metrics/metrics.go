// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity label values.
const (
	EntityMovie = "movie"
	EntityUser  = "user"
)

var (
	// Catalog Metrics
	CatalogInsertions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_catalog_insertions_total",
			Help: "Total number of catalog insertion attempts by outcome",
		},
		[]string{"entity", "result"}, // result: "accepted", "rejected"
	)

	CatalogRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_catalog_rejections_total",
			Help: "Total number of rejected catalog insertions by integrity rule",
		},
		[]string{"entity", "reason"},
	)

	CatalogSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinerec_catalog_size",
			Help: "Number of records held by the most recently updated catalog",
		},
		[]string{"entity"},
	)

	// Parser Metrics
	ParserRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_parser_records_total",
			Help: "Total number of records parsed from text input",
		},
		[]string{"kind"},
	)

	ParserSkippedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerec_parser_skipped_lines_total",
			Help: "Total number of movie header lines skipped for having no comma",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinerec_recommend_duration_seconds",
			Help:    "Time to compute recommendations for one user",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinerec_recommend_results",
			Help:    "Number of movies recommended per user",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	RecommendUnknownLiked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerec_recommend_unknown_liked_total",
			Help: "Total number of liked movie ids that did not resolve in the catalog",
		},
	)

	// Report Metrics
	ReportUsersWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_report_users_written_total",
			Help: "Total number of user entries written to recommendation output",
		},
		[]string{"format"},
	)

	BatchLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_batch_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful batch run",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerec_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_recommend_cache_lookups_total",
			Help: "Recommendation cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
)

// RecordCatalogAccepted records an accepted insertion and the resulting size.
func RecordCatalogAccepted(entity string, size int) {
	CatalogInsertions.WithLabelValues(entity, "accepted").Inc()
	CatalogSize.WithLabelValues(entity).Set(float64(size))
}

// RecordCatalogRejected records an insertion rejected by the named rule.
func RecordCatalogRejected(entity, reason string) {
	CatalogInsertions.WithLabelValues(entity, "rejected").Inc()
	CatalogRejections.WithLabelValues(entity, reason).Inc()
}

// RecordParsed records n records of kind parsed from input.
func RecordParsed(kind string, n int) {
	ParserRecords.WithLabelValues(kind).Add(float64(n))
}

// RecordSkippedLine records a skipped movie header line.
func RecordSkippedLine() {
	ParserSkippedLines.Inc()
}

// RecordRecommendation records one engine call.
func RecordRecommendation(duration time.Duration, results, unknownLiked int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
	if unknownLiked > 0 {
		RecommendUnknownLiked.Add(float64(unknownLiked))
	}
}

// RecordReport records users written in the given output format.
func RecordReport(format string, users int) {
	ReportUsersWritten.WithLabelValues(format).Add(float64(users))
}

// RecordBatchSuccess stamps the last successful batch run.
func RecordBatchSuccess() {
	BatchLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordCacheLookup records a recommendation cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheLookups.WithLabelValues("hit").Inc()
	} else {
		RecommendCacheLookups.WithLabelValues("miss").Inc()
	}
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// WriteTextfile writes the default registry to path in the Prometheus text
// format, for collection by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
