// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator that carries the lexical
// rules of the movie and user records as custom tags:
//
//	movietitle  every whitespace-delimited word is an uppercase ASCII letter
//	            followed by lowercase letters or digits
//	genre       non-empty, contains no decimal digit
//	username    an ASCII letter followed by letters and spaces
//	userid      one or more digits with an optional single trailing letter
//
// # Quick Start
//
//	type movieInput struct {
//	    Genres []string `validate:"min=1,dive,genre"`
//	    Title  string   `validate:"movietitle"`
//	}
//
//	if verr := validation.ValidateStruct(&in); verr != nil {
//	    first := verr.Errors()[0]
//	    // first.Tag() says which rule failed
//	}
//
// Fields are checked in declaration order and each field stops at its first
// failing tag, so the first ValidationError identifies the highest-priority
// failure of a struct.
//
// # API Errors
//
// ToAPIError converts a RequestValidationError into the code/message/details
// triple the HTTP layer writes into its error envelope.
package validation
