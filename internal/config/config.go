// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Output    OutputConfig    `koanf:"output"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// InputConfig holds the input file paths.
type InputConfig struct {
	MoviesFile string `koanf:"movies_file"`
	UsersFile  string `koanf:"users_file"`
}

// OutputConfig holds the report destination.
type OutputConfig struct {
	File string `koanf:"file"`

	// Format is text or json.
	Format string `koanf:"format"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// MaxResults caps recommendations per user. 0 means unlimited.
	MaxResults int `koanf:"max_results"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// CORSOrigins is a comma-separated list of allowed origins. Empty
	// disables CORS headers.
	CORSOrigins string `koanf:"cors_origins"`

	// RateLimitRequests caps write requests per client IP within
	// RateLimitWindow. 0 disables the limit.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (s ServerConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// Textfile is a path for the Prometheus textfile written after a batch
	// run. Empty disables it.
	Textfile string `koanf:"textfile"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load loads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
