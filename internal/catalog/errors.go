// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package catalog

import (
	"errors"
)

// Movie validation errors.
var (
	ErrEmptyGenres       = errors.New("movie has no genres")
	ErrInvalidGenre      = errors.New("invalid movie genre")
	ErrInvalidTitle      = errors.New("invalid movie title")
	ErrIDLettersMismatch = errors.New("movie id letters do not match title")
	ErrIDDigitsInvalid   = errors.New("movie id digits are invalid")
)

// User validation errors.
var (
	ErrInvalidName = errors.New("invalid user name")
	ErrInvalidID   = errors.New("invalid user id")
)

// Catalog integrity errors.
var (
	ErrDuplicateMovieFingerprint = errors.New("duplicate movie fingerprint")
	ErrDuplicateUserID           = errors.New("duplicate user id")
	ErrUnknownLikedMovie         = errors.New("user likes unknown movie")
)

// Error is a rejected record. Kind is one of the package sentinels and Value
// is the offending input (an id, title, name or genre).
type Error struct {
	Kind  error
	Value string
	msg   string
}

func newError(kind error, value, msg string) *Error {
	return &Error{Kind: kind, Value: value, msg: msg}
}

// Error returns the user-facing message, e.g. "ERROR: Movie Title the matrix is wrong".
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the sentinel kind so errors.Is matches it.
func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf returns the sentinel kind of err, or nil when err is not a catalog error.
func KindOf(err error) error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return nil
}

// Reason returns a short snake_case label for a sentinel kind, used in metrics
// and API error details.
func Reason(kind error) string {
	switch kind {
	case ErrEmptyGenres:
		return "empty_genres"
	case ErrInvalidGenre:
		return "invalid_genre"
	case ErrInvalidTitle:
		return "invalid_title"
	case ErrIDLettersMismatch:
		return "id_letters_mismatch"
	case ErrIDDigitsInvalid:
		return "id_digits_invalid"
	case ErrInvalidName:
		return "invalid_name"
	case ErrInvalidID:
		return "invalid_id"
	case ErrDuplicateMovieFingerprint:
		return "duplicate_movie_fingerprint"
	case ErrDuplicateUserID:
		return "duplicate_user_id"
	case ErrUnknownLikedMovie:
		return "unknown_liked_movie"
	default:
		return "unknown"
	}
}

// IsValidationError reports whether err was produced by NewMovie or NewUser.
func IsValidationError(err error) bool {
	switch KindOf(err) {
	case ErrEmptyGenres, ErrInvalidGenre, ErrInvalidTitle, ErrIDLettersMismatch,
		ErrIDDigitsInvalid, ErrInvalidName, ErrInvalidID:
		return true
	}
	return false
}
