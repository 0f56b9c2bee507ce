// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package recommend implements genre-overlap movie recommendations.
//
// # Algorithm
//
// For one user:
//
//  1. Resolve the user's liked ids to movies through the Source. Ids that do
//     not resolve are skipped.
//  2. Collect the genres of the resolved movies into an insertion-ordered,
//     deduplicated set.
//  3. Walk the Source's movies in catalog order. A movie is recommended when it
//     is not one of the liked movies and at least one of its genres is in the
//     set.
//
// Output follows catalog order, not relevance. An empty liked list or an
// empty catalog yields an empty result. Recommend never fails.
//
// # Design Principles
//
//   - Deterministic: same catalog and user produce identical output
//   - Observable: per-call latency and result size exported to Prometheus
//   - Traceable: the correlation id in the context is attached to debug logs
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	movies := engine.Recommend(ctx, user, cat)
//	results := engine.RecommendAll(ctx, cat)
//
// Config.MaxResults truncates each result list when positive.
package recommend
