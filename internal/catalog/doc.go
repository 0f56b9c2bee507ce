// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package catalog holds the validated movie and user records and the Catalog
// that enforces integrity across them.
//
// # Records
//
// Movie and User values can only be obtained through NewMovie and NewUser,
// which apply the lexical rules and return a *Error naming the first rule
// that failed. A Movie is immutable. A User can only grow its liked list via
// AddLikedMovie.
//
// Movie rules, checked in this order:
//  1. at least one genre
//  2. every genre non-empty and digit-free
//  3. every title word is an uppercase letter followed by lowercase letters or digits
//  4. the leading letters of the id equal the title's capitals
//  5. exactly three digits follow those letters
//
// User rules: the name is a letter followed by letters and spaces, and the id
// is nine characters of digits with an optional single trailing letter.
//
// # Catalog
//
// A Catalog keeps movies and users in insertion order and rejects any
// insertion that would break one of its invariants:
//
//   - no two movies share a fingerprint (the digits of the id)
//   - no two users share an id
//   - every liked id of a user names a movie already present
//
// A rejected insertion leaves the catalog unchanged. Insertions are serialized
// by a mutex so HTTP handlers may add records concurrently; reads return copies.
//
// Lookups and uniqueness checks are linear scans. Bulk loads are quadratic in
// the number of records, which is fine for the flat-file inputs this tool reads.
//
// # Errors
//
// Every rejection is a *Error whose Kind is one of the exported sentinels:
//
//	if errors.Is(err, catalog.ErrDuplicateUserID) { ... }
//
// Error() returns the user-facing "ERROR: ..." line written by the CLI.
package catalog
