// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/report"
	"github.com/tomtom215/cinerec/internal/validation"
)

// ListMovies handles GET /api/v1/movies.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseListRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeRequestValidationError(rw, verr)
		return
	}

	movies := h.catalog.Movies()
	lo, hi := req.page(len(movies))

	rw.SuccessWithPagination(movieEntries(movies[lo:hi]), &PaginationMeta{
		Total:   len(movies),
		Count:   hi - lo,
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: hi < len(movies),
	})
}

// GetMovie handles GET /api/v1/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	m, ok := h.catalog.MovieByID(id)
	if !ok {
		rw.NotFound("movie " + id + " not found")
		return
	}

	rw.Success(report.NewMovieEntry(m))
}

// CreateMovie handles POST /api/v1/movies. The movie is validated and then
// appended to the catalog. Cached recommendations are dropped.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateMovieRequest
	verr, err := decodeJSON(w, r, &req)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr != nil {
		writeRequestValidationError(rw, verr)
		return
	}

	m, err := catalog.NewMovie(req.Title, req.ID, req.Genres)
	if err != nil {
		writeCatalogError(rw, err)
		return
	}
	if err := h.catalog.AddMovie(m); err != nil {
		writeCatalogError(rw, err)
		return
	}
	// a new movie can enter any user's candidate set
	h.recs.Purge()

	logging.Ctx(r.Context()).Info().Str("movie_id", m.ID()).Msg("movie created")
	rw.Created(report.NewMovieEntry(m))
}
