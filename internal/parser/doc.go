// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package parser converts the line-oriented movie and user text files into
// validated catalog records.
//
// Both formats are sequences of two-line records.
//
// Movies:
//
//	The Matrix,TM123
//	Action,Sci-Fi
//
// Users:
//
//	Ali,123456789
//	TM123,I456
//
// Parsing is independent of any Catalog: the parsers only apply the per-record
// rules of catalog.NewMovie and catalog.NewUser. Cross-record integrity
// (fingerprints, duplicate users, liked references) is checked when the
// result is loaded with catalog.FromParseResult.
//
// Line handling: input is split on "\n", a trailing "\r" is removed from each
// line, and trailing blank lines are ignored. Empty input is a single blank
// line. Every error names the 1-based line it was found on.
package parser
