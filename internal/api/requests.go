// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinerec/internal/validation"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

// CreateMovieRequest is the body of POST /api/v1/movies. Presence is checked
// here; the title, id and genre rules are enforced by catalog.NewMovie.
type CreateMovieRequest struct {
	Title  string   `json:"title" validate:"required"`
	ID     string   `json:"id" validate:"required"`
	Genres []string `json:"genres" validate:"required"`
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Name        string   `json:"name" validate:"required"`
	ID          string   `json:"id" validate:"required"`
	LikedMovies []string `json:"liked_movies"`
}

// ListRequest holds the paging query parameters of list endpoints.
type ListRequest struct {
	Limit  int `validate:"min=0,max=1000"`
	Offset int `validate:"min=0"`
}

// decodeJSON reads a single JSON object from the request body into dst and
// validates its struct tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) (*validation.RequestValidationError, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	return validation.ValidateStruct(dst), nil
}

// parseListRequest reads limit and offset query parameters. Absent values
// default to 0, meaning no limit and the first item.
func parseListRequest(r *http.Request) (ListRequest, error) {
	var req ListRequest
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, errors.New("limit must be an integer")
		}
		req.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, errors.New("offset must be an integer")
		}
		req.Offset = n
	}

	return req, nil
}

// page returns the [lo, hi) bounds of a page over total items.
func (lr ListRequest) page(total int) (lo, hi int) {
	lo = min(lr.Offset, total)
	hi = total
	if lr.Limit > 0 && lo+lr.Limit < total {
		hi = lo + lr.Limit
	}
	return lo, hi
}
