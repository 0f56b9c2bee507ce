// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
)

// Engine computes genre-overlap recommendations. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	requestCount atomic.Int64
	recommended  atomic.Int64
	unknownLiked atomic.Int64
}

// NewEngine creates a new recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns the movies of src that share a genre with the movies user
// likes, excluding the liked movies themselves, in catalog order.
//
//nolint:gocritic // hugeParam: user passed by value, it is a read-only snapshot
func (e *Engine) Recommend(ctx context.Context, user catalog.User, src Source) []catalog.Movie {
	start := time.Now()
	e.requestCount.Add(1)
	logger := e.createRequestLogger(ctx, user)

	liked, unknown := resolveLiked(user, src)
	genres, genreSet := likedGenres(liked)
	exclude := buildExcludeSet(liked)

	out := filterCandidates(src.Movies(), genreSet, exclude, e.config.MaxResults)

	e.recommended.Add(int64(len(out)))
	e.unknownLiked.Add(int64(unknown))
	metrics.RecordRecommendation(time.Since(start), len(out), unknown)

	logger.Debug().
		Int("liked", len(liked)).
		Int("unknown_liked", unknown).
		Strs("genres", genres).
		Int("returned", len(out)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return out
}

// RecommendAll computes recommendations for every user of c in catalog order.
func (e *Engine) RecommendAll(ctx context.Context, c *catalog.Catalog) []Result {
	users := c.Users()
	results := make([]Result, 0, len(users))

	for _, u := range users {
		results = append(results, Result{
			User:   u,
			Movies: e.Recommend(ctx, u, c),
		})
	}

	logging.Ctx(ctx).Info().
		Str("component", "recommend").
		Int("users", len(results)).
		Msg("recommendations generated")

	return results
}

// LikedGenres returns the deduplicated genres of the user's resolvable liked
// movies, in order of first appearance.
//
//nolint:gocritic // hugeParam: user passed by value, it is a read-only snapshot
func LikedGenres(user catalog.User, src Source) []string {
	liked, _ := resolveLiked(user, src)
	genres, _ := likedGenres(liked)
	return genres
}

// Stats returns cumulative engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		RequestCount: e.requestCount.Load(),
		Recommended:  e.recommended.Load(),
		UnknownLiked: e.unknownLiked.Load(),
	}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

//nolint:gocritic // hugeParam: user passed by value, it is a read-only snapshot
func (e *Engine) createRequestLogger(ctx context.Context, user catalog.User) zerolog.Logger {
	l := e.logger.With().Str("user_id", user.ID())
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		l = l.Str("correlation_id", id)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		l = l.Str("request_id", id)
	}
	return l.Logger()
}

// resolveLiked looks up each liked id and counts the ones that do not resolve.
//
//nolint:gocritic // hugeParam: user passed by value, it is a read-only snapshot
func resolveLiked(user catalog.User, src Source) (liked []catalog.Movie, unknown int) {
	ids := user.LikedMovies()
	liked = make([]catalog.Movie, 0, len(ids))
	for _, id := range ids {
		m, ok := src.MovieByID(id)
		if !ok {
			unknown++
			continue
		}
		liked = append(liked, m)
	}
	return liked, unknown
}

// likedGenres returns the genres of liked in first-seen order, plus a lookup set.
func likedGenres(liked []catalog.Movie) ([]string, map[string]struct{}) {
	ordered := make([]string, 0)
	set := make(map[string]struct{})
	for _, m := range liked {
		for _, g := range m.Genres() {
			if _, seen := set[g]; seen {
				continue
			}
			set[g] = struct{}{}
			ordered = append(ordered, g)
		}
	}
	return ordered, set
}

func buildExcludeSet(liked []catalog.Movie) map[string]struct{} {
	exclude := make(map[string]struct{}, len(liked))
	for _, m := range liked {
		exclude[m.ID()] = struct{}{}
	}
	return exclude
}

// filterCandidates keeps movies outside exclude that share a genre with
// genreSet, stopping at limit when limit is positive.
func filterCandidates(movies []catalog.Movie, genreSet, exclude map[string]struct{}, limit int) []catalog.Movie {
	out := make([]catalog.Movie, 0)
	if len(genreSet) == 0 {
		return out
	}

	for _, m := range movies {
		if _, skip := exclude[m.ID()]; skip {
			continue
		}
		if !m.HasAnyGenre(genreSet) {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
