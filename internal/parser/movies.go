// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package parser

import (
	"strings"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
)

// ParseMovies parses "Title,ID" / "genre,genre,..." record pairs.
//
// A header line without a comma is skipped. A header with more than two
// fields, or one with no genre line after it, is malformed.
func ParseMovies(data string) ([]catalog.Movie, error) {
	lines := splitLines(data)
	movies := make([]catalog.Movie, 0, len(lines)/2)

	for i := 0; i < len(lines); {
		header := lines[i]
		lineNo := i + 1

		if !strings.Contains(header, ",") {
			logging.Debug().Int("line", lineNo).Str("content", header).Msg("skipping movie line without comma")
			metrics.RecordSkippedLine()
			i++
			continue
		}

		fields := strings.Split(header, ",")
		if len(fields) != 2 {
			return nil, malformed(lineNo, "movie header %q must have 2 fields, got %d", header, len(fields))
		}
		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])

		if i+1 >= len(lines) {
			return nil, malformed(lineNo, "movie %s has no genre line", id)
		}

		m, err := catalog.NewMovie(title, id, splitList(lines[i+1]))
		if err != nil {
			return nil, atLine(lineNo, err)
		}
		movies = append(movies, m)
		i += 2
	}

	metrics.RecordParsed(metrics.EntityMovie, len(movies))
	return movies, nil
}
