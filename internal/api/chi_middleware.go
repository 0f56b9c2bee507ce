// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterConfig holds the optional middleware settings for SetupChi.
type RouterConfig struct {
	// Timeout bounds each API request. 0 disables it.
	Timeout time.Duration

	// CORSAllowedOrigins lists the origins allowed to call the API. Empty
	// disables CORS headers entirely.
	CORSAllowedOrigins []string
	CORSMaxAge         int // seconds

	// RateLimitRequests caps POST requests per client IP within
	// RateLimitWindow. 0 disables the limit.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// DefaultRouterConfig returns a configuration with no timeout, no CORS and
// no rate limit.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		CORSAllowedOrigins: []string{},
		CORSMaxAge:         86400,
	}
}

// CORS returns a go-chi/cors middleware, or a pass-through when no origins
// are configured.
func (c *RouterConfig) CORS() func(http.Handler) http.Handler {
	if len(c.CORSAllowedOrigins) == 0 {
		return passThrough
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: c.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         c.CORSMaxAge,
	})
}

// WriteRateLimit returns a per-IP go-chi/httprate limiter for catalog
// writes, or a pass-through when the limit is disabled. Rejected requests
// get a 429 in the APIResponse envelope.
func (c *RouterConfig) WriteRateLimit() func(http.Handler) http.Handler {
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return passThrough
	}
	return httprate.Limit(
		c.RateLimitRequests,
		c.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests, ErrCodeRateLimited, "Too many requests")
		}),
	)
}

func passThrough(next http.Handler) http.Handler {
	return next
}
