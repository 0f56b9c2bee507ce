// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/logging"
)

// ErrMalformedRecordLine is returned for lines that do not fit the record
// format, such as a wrong field count or a missing companion line.
var ErrMalformedRecordLine = errors.New("malformed record line")

// Parse parses both inputs into a ParseResult. Movies are parsed first.
func Parse(moviesData, usersData string) (catalog.ParseResult, error) {
	movies, err := ParseMovies(moviesData)
	if err != nil {
		return catalog.ParseResult{}, fmt.Errorf("parse movies: %w", err)
	}

	users, err := ParseUsers(usersData)
	if err != nil {
		return catalog.ParseResult{}, fmt.Errorf("parse users: %w", err)
	}

	return catalog.ParseResult{Movies: movies, Users: users}, nil
}

// ParseFiles reads and parses the movies and users files.
func ParseFiles(moviesPath, usersPath string) (catalog.ParseResult, error) {
	moviesData, err := os.ReadFile(moviesPath)
	if err != nil {
		return catalog.ParseResult{}, fmt.Errorf("read movies file: %w", err)
	}

	usersData, err := os.ReadFile(usersPath)
	if err != nil {
		return catalog.ParseResult{}, fmt.Errorf("read users file: %w", err)
	}

	logging.Debug().
		Str("movies_file", moviesPath).
		Str("users_file", usersPath).
		Int("movies_bytes", len(moviesData)).
		Int("users_bytes", len(usersData)).
		Msg("input files read")

	return Parse(string(moviesData), string(usersData))
}

// splitLines splits data into lines, dropping "\r" line endings and trailing
// blank lines. Empty input yields one blank line.
func splitLines(data string) []string {
	if data == "" {
		return []string{""}
	}

	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitList splits a comma-separated line into trimmed, non-empty tokens.
func splitList(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedRecordLine, line, fmt.Sprintf(format, args...))
}

func atLine(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
