// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package parser

import (
	"strings"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/metrics"
)

// ParseUsers parses "Name,ID" / "movieID,movieID,..." record pairs.
//
// The input must have an even number of lines. The liked line must start
// with a token containing a digit, so a user always likes at least one movie.
func ParseUsers(data string) ([]catalog.User, error) {
	lines := splitLines(data)
	if len(lines)%2 == 1 {
		return nil, malformed(len(lines), "odd number of lines (%d), last user has no liked movies line", len(lines))
	}

	users := make([]catalog.User, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		lineNo := i + 1

		fields := strings.Split(lines[i], ",")
		if len(fields) != 2 {
			return nil, malformed(lineNo, "user header %q must have 2 fields, got %d", lines[i], len(fields))
		}
		name := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])

		u, err := catalog.NewUser(name, id, nil)
		if err != nil {
			return nil, atLine(lineNo, err)
		}

		liked := splitList(lines[i+1])
		if len(liked) == 0 || !strings.ContainsAny(liked[0], "0123456789") {
			return nil, malformed(lineNo+1, "liked movies %q of user %s must start with a movie id", lines[i+1], id)
		}
		for _, movieID := range liked {
			u.AddLikedMovie(movieID)
		}
		users = append(users, u)
	}

	metrics.RecordParsed(metrics.EntityUser, len(users))
	return users, nil
}
