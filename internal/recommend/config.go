// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"fmt"
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// MaxResults caps the number of movies returned per user.
	// Zero means unlimited.
	MaxResults int `json:"max_results"`
}

// DefaultConfig returns a configuration with no result cap.
func DefaultConfig() *Config {
	return &Config{
		MaxResults: 0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be non-negative, got %d", c.MaxResults)
	}
	return nil
}
