// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/catalog"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestParseMovies(t *testing.T) {
	t.Parallel()

	data := "The Matrix,TM123\nAction, Sci-Fi\nThe Lord Of The Rings , TLOTR100 \nFantasy,,Adventure\n"

	movies, err := ParseMovies(data)
	if err != nil {
		t.Fatalf("ParseMovies() error = %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}

	if movies[0].Title() != "The Matrix" || movies[0].ID() != "TM123" {
		t.Errorf("movie 0 = (%q, %q)", movies[0].Title(), movies[0].ID())
	}
	if g := movies[0].Genres(); len(g) != 2 || g[1] != "Sci-Fi" {
		t.Errorf("movie 0 genres = %q", g)
	}
	if movies[1].Title() != "The Lord Of The Rings" || movies[1].ID() != "TLOTR100" {
		t.Errorf("movie 1 = (%q, %q)", movies[1].Title(), movies[1].ID())
	}
	if g := movies[1].Genres(); len(g) != 2 || g[0] != "Fantasy" || g[1] != "Adventure" {
		t.Errorf("movie 1 genres = %q", g)
	}
}

func TestParseMovies_Empty(t *testing.T) {
	t.Parallel()

	movies, err := ParseMovies("")
	if err != nil {
		t.Fatalf("ParseMovies(\"\") error = %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("got %d movies, want 0", len(movies))
	}
}

func TestParseMovies_SkipsLinesWithoutComma(t *testing.T) {
	t.Parallel()

	data := "Movies List\nThe Matrix,TM123\nAction\n\nInception,I456\nThriller\n"

	movies, err := ParseMovies(data)
	if err != nil {
		t.Fatalf("ParseMovies() error = %v", err)
	}
	if len(movies) != 2 || movies[1].ID() != "I456" {
		t.Errorf("got %d movies", len(movies))
	}
}

func TestParseMovies_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantErr  error
		wantText string
	}{
		{
			name:     "dangling header",
			data:     "The Matrix,TM123\nAction\nInception,I456\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 3: movie I456 has no genre line",
		},
		{
			name:     "too many fields",
			data:     "The Matrix,TM123,extra\nAction\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 1:",
		},
		{
			name:     "bad title",
			data:     "The Matrix,TM123\nAction\nthe matrix,TM456\nAction\n",
			wantErr:  catalog.ErrInvalidTitle,
			wantText: "line 3: ERROR: Movie Title the matrix is wrong",
		},
		{
			name:     "numeric genre",
			data:     "The Matrix,TM123\nAction,123\n",
			wantErr:  catalog.ErrInvalidGenre,
			wantText: "ERROR: Movie TM123 genre 123 is wrong",
		},
		{
			name:     "blank genre line",
			data:     "The Matrix,TM123\n , \n",
			wantErr:  catalog.ErrEmptyGenres,
			wantText: "ERROR: Movie TM123 has empty genres list",
		},
		{
			name:     "bad id letters",
			data:     "Inception,X456\nAction\n",
			wantErr:  catalog.ErrIDLettersMismatch,
			wantText: "ERROR: Movie Id letters X456 are wrong",
		},
		{
			name:     "bad id digits",
			data:     "Inception,I45\nAction\n",
			wantErr:  catalog.ErrIDDigitsInvalid,
			wantText: "ERROR: Movie Id numbers I45 are wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseMovies(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseMovies() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantText)
			}
		})
	}
}

func TestParseMovies_RoundTripsFields(t *testing.T) {
	t.Parallel()

	movies, err := ParseMovies("Se7en,S777\nCrime,Mystery,Thriller")
	if err != nil {
		t.Fatalf("ParseMovies() error = %v", err)
	}
	m := movies[0]
	line := m.Title() + "," + m.ID() + "\n" + strings.Join(m.Genres(), ",")
	if line != "Se7en,S777\nCrime,Mystery,Thriller" {
		t.Errorf("fields did not survive parsing: %q", line)
	}
}
