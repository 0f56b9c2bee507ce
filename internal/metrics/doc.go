// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are package-level promauto collectors registered on the default
registry, so any package can record without plumbing a registry through.

# Overview

The package provides metrics for:
  - Catalog insertions, accepted and rejected by reason
  - Parser throughput and skipped header lines
  - Recommendation latency and result size
  - Report output per format
  - HTTP request latency and throughput (serve mode)

# Export

In serve mode the default registry is exposed at /metrics via promhttp:

	curl http://localhost:8080/metrics

A batch run has no scrape window, so the CLI writes the registry to a
node_exporter textfile instead when metrics.textfile is set:

	metrics.WriteTextfile("/var/lib/node_exporter/cinerec.prom")

# Available Metrics

	cinerec_catalog_insertions_total{entity,result}
	cinerec_catalog_rejections_total{entity,reason}
	cinerec_catalog_size{entity}
	cinerec_parser_records_total{kind}
	cinerec_parser_skipped_lines_total
	cinerec_recommend_duration_seconds
	cinerec_recommend_results
	cinerec_recommend_unknown_liked_total
	cinerec_report_users_written_total{format}
	cinerec_batch_last_success_timestamp_seconds
	cinerec_api_requests_total{method,endpoint,status}
	cinerec_api_request_duration_seconds{method,endpoint}
	cinerec_api_active_requests
*/
package metrics
