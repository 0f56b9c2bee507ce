// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/cache"
	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/report"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, health
//   - handlers_movies.go: movie list, lookup and create
//   - handlers_users.go: user list, lookup, create and recommendations
type Handler struct {
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	recs      *cache.LRU[[]catalog.Movie]
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a Handler over a live catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(cat *catalog.Catalog, engine *recommend.Engine, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog:   cat,
		engine:    engine,
		recs:      cache.New[[]catalog.Movie](cache.DefaultCapacity, cache.DefaultTTL),
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Movies        int     `json:"movies"`
	Users         int     `json:"users"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Health reports catalog sizes and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "healthy",
		Movies:        h.catalog.MovieCount(),
		Users:         h.catalog.UserCount(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// UserResponse is the JSON shape of one user.
type UserResponse struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	LikedMovies []string `json:"liked_movies"`
}

//nolint:gocritic // hugeParam: catalog.User is a read-only value
func newUserResponse(u catalog.User) UserResponse {
	return UserResponse{Name: u.Name(), ID: u.ID(), LikedMovies: u.LikedMovies()}
}

func movieEntries(movies []catalog.Movie) []report.MovieEntry {
	out := make([]report.MovieEntry, len(movies))
	for i, m := range movies {
		out[i] = report.NewMovieEntry(m)
	}
	return out
}
