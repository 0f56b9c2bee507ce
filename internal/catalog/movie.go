// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/cinerec/internal/validation"
)

// Movie is a validated movie record.
type Movie struct {
	title  string
	id     string
	genres []string
}

// movieInput carries the lexical movie rules. Field order is check order.
type movieInput struct {
	Genres []string `validate:"min=1,dive,genre"`
	Title  string   `validate:"movietitle"`
}

// NewMovie validates the fields and returns a Movie, or a *Error for the
// first rule that fails. The genres slice is copied.
func NewMovie(title, id string, genres []string) (Movie, error) {
	in := movieInput{Genres: genres, Title: title}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return Movie{}, movieRuleError(verr.First(), title, id)
	}

	letters, digits := splitMovieID(id)
	if letters != titleCapitals(title) {
		return Movie{}, newError(ErrIDLettersMismatch, id,
			fmt.Sprintf("ERROR: Movie Id letters %s are wrong", id))
	}
	if !isThreeDigits(digits) {
		return Movie{}, newError(ErrIDDigitsInvalid, id,
			fmt.Sprintf("ERROR: Movie Id numbers %s are wrong", id))
	}

	return Movie{title: title, id: id, genres: slices.Clone(genres)}, nil
}

func movieRuleError(fe *validation.ValidationError, title, id string) *Error {
	switch fe.Tag() {
	case validation.TagGenre:
		genre := fmt.Sprint(fe.Value())
		return newError(ErrInvalidGenre, genre,
			fmt.Sprintf("ERROR: Movie %s genre %s is wrong", id, genre))
	case validation.TagMovieTitle:
		return newError(ErrInvalidTitle, title,
			fmt.Sprintf("ERROR: Movie Title %s is wrong", title))
	default:
		return newError(ErrEmptyGenres, id,
			fmt.Sprintf("ERROR: Movie %s has empty genres list", id))
	}
}

// Title returns the movie title.
func (m Movie) Title() string {
	return m.title
}

// ID returns the movie id, e.g. "TM123".
func (m Movie) ID() string {
	return m.id
}

// Genres returns a copy of the movie's genres in input order.
func (m Movie) Genres() []string {
	return slices.Clone(m.genres)
}

// Fingerprint returns the digit part of the id, which must be unique per catalog.
func (m Movie) Fingerprint() string {
	_, digits := splitMovieID(m.id)
	return digits
}

// HasAnyGenre reports whether any of the movie's genres is in set.
func (m Movie) HasAnyGenre(set map[string]struct{}) bool {
	for _, g := range m.genres {
		if _, ok := set[g]; ok {
			return true
		}
	}
	return false
}

// splitMovieID splits id into its leading ASCII letter run and the remainder.
func splitMovieID(id string) (letters, rest string) {
	i := 0
	for i < len(id) && isASCIILetter(id[i]) {
		i++
	}
	return id[:i], id[i:]
}

// titleCapitals returns the uppercase ASCII letters of title in order.
func titleCapitals(title string) string {
	var b strings.Builder
	for i := 0; i < len(title); i++ {
		if c := title[i]; c >= 'A' && c <= 'Z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isThreeDigits(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
