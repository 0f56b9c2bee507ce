// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validOutputFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}

	if err := c.validateOutput(); err != nil {
		return err
	}

	if c.Recommend.MaxResults < 0 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be non-negative, got %d", c.Recommend.MaxResults)
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if strings.TrimSpace(c.Input.MoviesFile) == "" {
		return errors.New("MOVIES_FILE is required")
	}
	if strings.TrimSpace(c.Input.UsersFile) == "" {
		return errors.New("USERS_FILE is required")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.File) == "" {
		return errors.New("OUTPUT_FILE is required")
	}
	if !validOutputFormats[strings.ToLower(c.Output.Format)] {
		return errors.New("OUTPUT_FORMAT must be one of: text, json")
	}
	return nil
}

// validateServer validates the serve mode listener settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.RateLimitRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", c.Server.RateLimitRequests)
	}
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Server.RateLimitWindow)
	}
	return nil
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return errors.New("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return errors.New("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
