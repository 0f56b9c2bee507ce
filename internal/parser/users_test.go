// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/cinerec/internal/catalog"
)

func TestParseUsers(t *testing.T) {
	t.Parallel()

	data := "Ali,123456789\nTM123,I456\nMona Said , 12345678X\n I456 ,,TM123\n"

	users, err := ParseUsers(data)
	if err != nil {
		t.Fatalf("ParseUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[1].Name() != "Mona Said" || users[1].ID() != "12345678X" {
		t.Errorf("user 1 = (%q, %q)", users[1].Name(), users[1].ID())
	}
	liked := users[1].LikedMovies()
	if len(liked) != 2 || liked[0] != "I456" || liked[1] != "TM123" {
		t.Errorf("user 1 liked = %q", liked)
	}
}

func TestParseUsers_KeepsDuplicateLikes(t *testing.T) {
	t.Parallel()

	users, err := ParseUsers("Ali,123456789\nTM123,TM123\n")
	if err != nil {
		t.Fatalf("ParseUsers() error = %v", err)
	}
	if got := users[0].LikedMovies(); len(got) != 2 {
		t.Errorf("liked = %q, want duplicates kept", got)
	}
}

func TestParseUsers_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantErr  error
		wantText string
	}{
		{
			name:     "empty input",
			data:     "",
			wantErr:  ErrMalformedRecordLine,
			wantText: "odd number of lines (1)",
		},
		{
			name:     "odd line count",
			data:     "Ali,123456789\nTM123\nMona,987654321\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "odd number of lines (3)",
		},
		{
			name:     "one field",
			data:     "Ali 123456789\nTM123\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 1:",
		},
		{
			name:     "three fields",
			data:     "Ali,123456789,x\nTM123\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 1:",
		},
		{
			name:     "first liked token without digit",
			data:     "Ali,123456789\nMatrix,TM123\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 2:",
		},
		{
			name:     "blank liked line",
			data:     "Ali,123456789\n \nMona,987654321\nTM123\n",
			wantErr:  ErrMalformedRecordLine,
			wantText: "line 2:",
		},
		{
			name:     "bad name",
			data:     "Ali2,123456789\nTM123\n",
			wantErr:  catalog.ErrInvalidName,
			wantText: "line 1: ERROR: User Name Ali2 is wrong",
		},
		{
			name:     "bad name reported before bad liked line",
			data:     "Ali2,123456789\nMatrix\n",
			wantErr:  catalog.ErrInvalidName,
			wantText: "ERROR: User Name Ali2 is wrong",
		},
		{
			name:     "bad id",
			data:     "Ali,123456789\nTM123\nMona,12345\nTM123\n",
			wantErr:  catalog.ErrInvalidID,
			wantText: "line 3: ERROR: User Id 12345 is wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseUsers(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseUsers() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantText)
			}
		})
	}
}
