// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package api serves a live catalog and its recommendations over HTTP.
//
// Routes are registered on a chi router by Router.SetupChi:
//
//	GET  /api/v1/health
//	GET  /api/v1/movies                        ?limit=&offset=
//	POST /api/v1/movies
//	GET  /api/v1/movies/{id}
//	GET  /api/v1/users                         ?limit=&offset=
//	POST /api/v1/users
//	GET  /api/v1/users/{id}
//	GET  /api/v1/users/{id}/recommendations
//	GET  /metrics
//
// Every JSON body uses the APIResponse envelope:
//
//	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
//	{"success": false, "error": {"code": "CONFLICT", "message": "..."}, "meta": {...}}
//
// Errors map to statuses as follows:
//
//	movie or user rule failures     400 VALIDATION_FAILED
//	duplicate fingerprint or id     409 CONFLICT
//	liked movie not in the catalog  422 UNKNOWN_REFERENCE
//	missing movie or user           404 NOT_FOUND
//	write rate limit exceeded       429 RATE_LIMITED
//
// Recommendation lists are held in an LRU cache keyed by user id and purged
// whenever a movie is created.
package api
