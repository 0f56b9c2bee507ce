// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// Format is an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// UserEntry is the JSON shape of one user's recommendations.
type UserEntry struct {
	Name            string       `json:"name"`
	ID              string       `json:"id"`
	Recommendations []MovieEntry `json:"recommendations"`
}

// MovieEntry is the JSON shape of one movie.
type MovieEntry struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// NewMovieEntry converts a catalog movie to its JSON shape.
//
//nolint:gocritic // hugeParam: catalog.Movie is a read-only value
func NewMovieEntry(m catalog.Movie) MovieEntry {
	return MovieEntry{ID: m.ID(), Title: m.Title(), Genres: m.Genres()}
}

// NewUserEntry converts a recommendation result to its JSON shape.
//
//nolint:gocritic // hugeParam: recommend.Result is a read-only value
func NewUserEntry(r recommend.Result) UserEntry {
	recs := make([]MovieEntry, len(r.Movies))
	for i, m := range r.Movies {
		recs[i] = NewMovieEntry(m)
	}
	return UserEntry{Name: r.User.Name(), ID: r.User.ID(), Recommendations: recs}
}

// Writer writes results in one format.
type Writer struct {
	w      io.Writer
	format Format
}

// NewWriter creates a Writer. An empty format means text.
func NewWriter(w io.Writer, f Format) *Writer {
	if f == "" {
		f = FormatText
	}
	return &Writer{w: w, format: f}
}

// Write writes all results.
func (rw *Writer) Write(results []recommend.Result) error {
	var err error
	switch rw.format {
	case FormatText:
		err = rw.writeText(results)
	case FormatJSON:
		err = rw.writeJSON(results)
	default:
		err = fmt.Errorf("unknown output format %q", rw.format)
	}
	if err != nil {
		return err
	}

	metrics.RecordReport(string(rw.format), len(results))
	return nil
}

func (rw *Writer) writeText(results []recommend.Result) error {
	bw := bufio.NewWriter(rw.w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", r.User.Name(), r.User.ID()); err != nil {
			return fmt.Errorf("write user %s: %w", r.User.ID(), err)
		}
		if len(r.Movies) == 0 {
			continue
		}
		titles := make([]string, len(r.Movies))
		for i, m := range r.Movies {
			titles[i] = m.Title()
		}
		if _, err := fmt.Fprintln(bw, strings.Join(titles, ",")); err != nil {
			return fmt.Errorf("write recommendations for %s: %w", r.User.ID(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

func (rw *Writer) writeJSON(results []recommend.Result) error {
	entries := make([]UserEntry, len(results))
	for i, r := range results {
		entries[i] = NewUserEntry(r)
	}

	enc := json.NewEncoder(rw.w)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes all results to it.
func WriteFile(path string, f Format, results []recommend.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", cerr)
		}
	}()

	return NewWriter(file, f).Write(results)
}
