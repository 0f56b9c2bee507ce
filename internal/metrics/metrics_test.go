// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// getCounterValue extracts the value from a Prometheus counter
func getCounterValue(counter prometheus.Counter) float64 {
	var m io_prometheus_client.Metric
	if err := counter.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(h prometheus.Histogram) uint64 {
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordCatalogAccepted(t *testing.T) {
	before := testutil.ToFloat64(CatalogInsertions.WithLabelValues(EntityMovie, "accepted"))

	RecordCatalogAccepted(EntityMovie, 7)

	after := testutil.ToFloat64(CatalogInsertions.WithLabelValues(EntityMovie, "accepted"))
	if after-before != 1 {
		t.Errorf("expected accepted counter to increase by 1, got %v", after-before)
	}
	if got := testutil.ToFloat64(CatalogSize.WithLabelValues(EntityMovie)); got != 7 {
		t.Errorf("expected catalog size 7, got %v", got)
	}
}

func TestRecordCatalogRejected(t *testing.T) {
	before := testutil.ToFloat64(CatalogRejections.WithLabelValues(EntityUser, "duplicate_user_id"))
	beforeTotal := testutil.ToFloat64(CatalogInsertions.WithLabelValues(EntityUser, "rejected"))

	RecordCatalogRejected(EntityUser, "duplicate_user_id")
	RecordCatalogRejected(EntityUser, "duplicate_user_id")

	if got := testutil.ToFloat64(CatalogRejections.WithLabelValues(EntityUser, "duplicate_user_id")) - before; got != 2 {
		t.Errorf("expected 2 rejections, got %v", got)
	}
	if got := testutil.ToFloat64(CatalogInsertions.WithLabelValues(EntityUser, "rejected")) - beforeTotal; got != 2 {
		t.Errorf("expected 2 rejected insertions, got %v", got)
	}
}

func TestRecordParsedAndSkipped(t *testing.T) {
	before := testutil.ToFloat64(ParserRecords.WithLabelValues(EntityMovie))
	beforeSkipped := testutil.ToFloat64(ParserSkippedLines)

	RecordParsed(EntityMovie, 3)
	RecordSkippedLine()

	if got := testutil.ToFloat64(ParserRecords.WithLabelValues(EntityMovie)) - before; got != 3 {
		t.Errorf("expected 3 parsed records, got %v", got)
	}
	if got := testutil.ToFloat64(ParserSkippedLines) - beforeSkipped; got != 1 {
		t.Errorf("expected 1 skipped line, got %v", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendUnknownLiked)

	RecordRecommendation(200*time.Microsecond, 3, 0)
	RecordRecommendation(100*time.Microsecond, 0, 2)

	if got := testutil.ToFloat64(RecommendUnknownLiked) - before; got != 2 {
		t.Errorf("expected 2 unknown liked ids, got %v", got)
	}
	if n := testutil.CollectAndCount(RecommendDuration); n != 1 {
		t.Errorf("expected 1 duration series, got %d", n)
	}
}

func TestRecordRecommendation_ResultsHistogram(t *testing.T) {
	before := getHistogramCount(RecommendResults)

	RecordRecommendation(time.Millisecond, 4, 0)

	if got := getHistogramCount(RecommendResults) - before; got != 1 {
		t.Errorf("expected 1 results observation, got %d", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := RecommendCacheLookups.WithLabelValues("hit")
	misses := RecommendCacheLookups.WithLabelValues("miss")
	beforeHits, beforeMisses := getCounterValue(hits), getCounterValue(misses)

	RecordCacheLookup(true)
	RecordCacheLookup(true)
	RecordCacheLookup(false)

	if got := getCounterValue(hits) - beforeHits; got != 2 {
		t.Errorf("expected 2 hits, got %v", got)
	}
	if got := getCounterValue(misses) - beforeMisses; got != 1 {
		t.Errorf("expected 1 miss, got %v", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200"))

	RecordAPIRequest("GET", "/api/v1/movies", "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200")) - before; got != 1 {
		t.Errorf("expected 1 request, got %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected %v active requests, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %v active requests, got %v", before, got)
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordReport("text", 2)
	RecordBatchSuccess()

	path := filepath.Join(t.TempDir(), "cinerec.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, name := range []string{"cinerec_report_users_written_total", "cinerec_batch_last_success_timestamp_seconds"} {
		if !strings.Contains(string(data), name) {
			t.Errorf("expected %s in textfile", name)
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "cinerec.prom")
	if err := WriteTextfile(path); err == nil {
		t.Error("expected error for unwritable path")
	}
}
