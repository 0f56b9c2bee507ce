// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"github.com/tomtom215/cinerec/internal/catalog"
)

// Source is the read side of a catalog. *catalog.Catalog implements it.
type Source interface {
	// MovieByID returns the movie with exactly this id.
	MovieByID(id string) (catalog.Movie, bool)

	// Movies returns all movies in catalog order.
	Movies() []catalog.Movie
}

// Result pairs a user with their recommended movies.
type Result struct {
	User   catalog.User
	Movies []catalog.Movie
}

// Stats holds cumulative engine counters.
type Stats struct {
	// RequestCount is the number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// Recommended is the total number of movies returned.
	Recommended int64 `json:"recommended"`

	// UnknownLiked is the number of liked ids that did not resolve.
	UnknownLiked int64 `json:"unknown_liked"`
}
