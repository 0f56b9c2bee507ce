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
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/report"
	"github.com/tomtom215/cinerec/internal/validation"
)

// ListUsers handles GET /api/v1/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
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

	users := h.catalog.Users()
	lo, hi := req.page(len(users))

	out := make([]UserResponse, 0, hi-lo)
	for _, u := range users[lo:hi] {
		out = append(out, newUserResponse(u))
	}

	rw.SuccessWithPagination(out, &PaginationMeta{
		Total:   len(users),
		Count:   len(out),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: hi < len(users),
	})
}

// GetUser handles GET /api/v1/users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	u, ok := h.catalog.UserByID(id)
	if !ok {
		rw.NotFound("user " + id + " not found")
		return
	}

	rw.Success(newUserResponse(u))
}

// CreateUser handles POST /api/v1/users. Every liked id must already be in
// the catalog.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CreateUserRequest
	verr, err := decodeJSON(w, r, &req)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr != nil {
		writeRequestValidationError(rw, verr)
		return
	}

	u, err := catalog.NewUser(req.Name, req.ID, req.LikedMovies)
	if err != nil {
		writeCatalogError(rw, err)
		return
	}
	if err := h.catalog.AddUser(u); err != nil {
		writeCatalogError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", u.ID()).
		Int("liked", len(u.LikedMovies())).
		Msg("user created")
	rw.Created(newUserResponse(u))
}

// GetRecommendations handles GET /api/v1/users/{id}/recommendations.
// Results are cached per user until the next movie is created.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	u, ok := h.catalog.UserByID(id)
	if !ok {
		rw.NotFound("user " + id + " not found")
		return
	}

	movies, ok := h.recs.Get(u.ID())
	metrics.RecordCacheLookup(ok)
	if !ok {
		movies = h.engine.Recommend(r.Context(), u, h.catalog)
		h.recs.Add(u.ID(), movies)
	}
	rw.Success(report.NewUserEntry(recommend.Result{User: u, Movies: movies}))
}
