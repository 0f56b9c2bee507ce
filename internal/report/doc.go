// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package report writes recommendation results.
//
// The text format is the line format read by downstream tooling. For each
// user, a "Name,ID" line is followed by a line of comma-separated recommended
// titles. The titles line is omitted when the user has no recommendations:
//
//	Ali,123456789
//	Inception,Alien
//	Mona,98765432X
//
// The json format is an array with one object per user:
//
//	[{"name":"Ali","id":"123456789","recommendations":[{"id":"I456","title":"Inception","genres":["Action","Thriller"]}]}]
package report
