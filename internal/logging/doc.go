// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package logging provides the zerolog-based structured logger used across cinerec.
//
// A single global logger is configured once from main with Init. Packages that
// hold their own logger (catalog, recommend, api) derive it with WithComponent so
// every line carries a "component" field.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("movies", path).Msg("parsing input")
//	logging.Err(err).Msg("catalog build failed")
//
// # Correlation IDs
//
// A batch run or an HTTP request gets an identifier stored in its context.
// Ctx(ctx) returns a logger with correlation_id and request_id attached:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Int("movies", n).Msg("catalog loaded")
//
// # Output
//
// Format "json" (default) writes one JSON object per line to stderr. Format
// "console" uses zerolog.ConsoleWriter for local runs.
package logging
