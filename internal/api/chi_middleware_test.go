// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/recommend"
)

func newConfiguredServer(t *testing.T, cfg *RouterConfig) http.Handler {
	t.Helper()
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	handler := NewHandler(catalog.New(zerolog.Nop()), engine, zerolog.Nop())
	return NewRouter(handler, cfg).SetupChi()
}

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{"disabled", nil, "https://app.example", ""},
		{"allowed origin", []string{"https://app.example"}, "https://app.example", "https://app.example"},
		{"other origin", []string{"https://app.example"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultRouterConfig()
			cfg.CORSAllowedOrigins = tt.origins
			h := newConfiguredServer(t, cfg)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestWriteRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultRouterConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	h := newConfiguredServer(t, cfg)

	bodies := []string{
		`{"title":"The Matrix","id":"TM123","genres":["Sci-Fi"]}`,
		`{"title":"Inception","id":"I456","genres":["Thriller"]}`,
		`{"title":"Toy Story","id":"TS789","genres":["Animation"]}`,
	}
	codes := make([]int, len(bodies))
	for i, b := range bodies {
		codes[i] = doRequest(t, h, http.MethodPost, "/api/v1/movies", b).Code
	}

	if codes[0] != http.StatusCreated || codes[1] != http.StatusCreated {
		t.Fatalf("first two POSTs = %v, want 201", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third POST = %d, want 429", codes[2])
	}

	w := doRequest(t, h, http.MethodPost, "/api/v1/movies", bodies[2])
	resp := envelope(t, w, nil)
	if resp.Error == nil || resp.Error.Code != ErrCodeRateLimited {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeRateLimited)
	}

	// reads are not limited
	for i := 0; i < 5; i++ {
		if code := doRequest(t, h, http.MethodGet, "/api/v1/movies", "").Code; code != http.StatusOK {
			t.Fatalf("GET %d status = %d", i, code)
		}
	}
}

func TestRouterConfigPassThrough(t *testing.T) {
	t.Parallel()

	cfg := DefaultRouterConfig()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for name, mw := range map[string]func(http.Handler) http.Handler{
		"cors":       cfg.CORS(),
		"rate limit": cfg.WriteRateLimit(),
	} {
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}")))
		if w.Code != http.StatusTeapot {
			t.Errorf("%s middleware altered disabled request: %d", name, w.Code)
		}
	}
}
