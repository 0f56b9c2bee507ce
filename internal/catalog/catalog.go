// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/metrics"
)

// ParseResult is the output of one parse run: movies and users in input order.
type ParseResult struct {
	Movies []Movie
	Users  []User
}

// Catalog is the in-memory store of movies and users.
// It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	movies []Movie
	users  []User
	logger zerolog.Logger
}

// New creates an empty catalog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(logger zerolog.Logger) *Catalog {
	return &Catalog{
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// FromParseResult builds a catalog by adding all movies and then all users in
// order. It stops at the first rejected record and returns its error.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func FromParseResult(res ParseResult, logger zerolog.Logger) (*Catalog, error) {
	c := New(logger)

	for _, m := range res.Movies {
		if err := c.AddMovie(m); err != nil {
			return nil, err
		}
	}
	for _, u := range res.Users {
		if err := c.AddUser(u); err != nil {
			return nil, err
		}
	}

	c.logger.Info().
		Int("movies", c.MovieCount()).
		Int("users", c.UserCount()).
		Msg("catalog loaded")

	return c, nil
}

// AddMovie appends m unless another movie already has its fingerprint.
func (c *Catalog) AddMovie(m Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fp := m.Fingerprint()
	for _, existing := range c.movies {
		if existing.Fingerprint() == fp {
			err := newError(ErrDuplicateMovieFingerprint, m.id,
				fmt.Sprintf("ERROR: Movie Id numbers %s aren't unique", m.id))
			c.reject(metrics.EntityMovie, m.id, err)
			return err
		}
	}

	c.movies = append(c.movies, m)
	metrics.RecordCatalogAccepted(metrics.EntityMovie, len(c.movies))
	c.logger.Debug().
		Str("movie_id", m.id).
		Int("movies", len(c.movies)).
		Msg("movie added")

	return nil
}

// AddUser appends u if every liked id names a movie in the catalog and no
// other user has the same id. Liked ids are checked first.
func (c *Catalog) AddUser(u User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, liked := range u.likedMovies {
		if _, ok := c.movieByIDLocked(liked); !ok {
			err := newError(ErrUnknownLikedMovie, liked,
				fmt.Sprintf("ERROR: User %s likes unknown movie %s", u.id, liked))
			c.reject(metrics.EntityUser, u.id, err)
			return err
		}
	}

	for _, existing := range c.users {
		if existing.id == u.id {
			err := newError(ErrDuplicateUserID, u.id,
				fmt.Sprintf("ERROR: User Id %s is duplicated", u.id))
			c.reject(metrics.EntityUser, u.id, err)
			return err
		}
	}

	c.users = append(c.users, u.clone())
	metrics.RecordCatalogAccepted(metrics.EntityUser, len(c.users))
	c.logger.Debug().
		Str("user_id", u.id).
		Int("liked", len(u.likedMovies)).
		Int("users", len(c.users)).
		Msg("user added")

	return nil
}

func (c *Catalog) reject(entity, id string, err *Error) {
	reason := Reason(err.Kind)
	metrics.RecordCatalogRejected(entity, reason)
	c.logger.Warn().
		Str("entity", entity).
		Str("id", id).
		Str("reason", reason).
		Msg(err.Error())
}

// MovieByID returns the first movie whose id equals id exactly.
func (c *Catalog) MovieByID(id string) (Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.movieByIDLocked(id)
}

func (c *Catalog) movieByIDLocked(id string) (Movie, bool) {
	for _, m := range c.movies {
		if m.id == id {
			return m, true
		}
	}
	return Movie{}, false
}

// UserByID returns the user with the given id.
func (c *Catalog) UserByID(id string) (User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, u := range c.users {
		if u.id == id {
			return u.clone(), true
		}
	}
	return User{}, false
}

// Movies returns the movies in insertion order.
func (c *Catalog) Movies() []Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.movies)
}

// Users returns the users in insertion order. Each user's liked list is copied.
func (c *Catalog) Users() []User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]User, len(c.users))
	for i, u := range c.users {
		out[i] = u.clone()
	}
	return out
}

// MovieCount returns the number of movies.
func (c *Catalog) MovieCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

// UserCount returns the number of users.
func (c *Catalog) UserCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
