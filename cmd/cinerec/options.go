// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
)

// commonFlags are shared by run and serve. Empty values leave the loaded
// configuration untouched.
type commonFlags struct {
	configPath string
	movies     string
	users      string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	fs.StringVar(&c.movies, "movies", "", "movies input file")
	fs.StringVar(&c.users, "users", "", "users input file")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// loadConfig loads layered configuration and applies the common flags.
func loadConfig(c *commonFlags) (*config.Config, error) {
	if c.configPath != "" {
		if _, err := os.Stat(c.configPath); err != nil {
			return nil, fmt.Errorf("%w: config file: %w", errUsage, err)
		}
		if err := os.Setenv(config.ConfigPathEnvVar, c.configPath); err != nil {
			return nil, fmt.Errorf("set %s: %w", config.ConfigPathEnvVar, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	if c.movies != "" {
		cfg.Input.MoviesFile = c.movies
	}
	if c.users != "" {
		cfg.Input.UsersFile = c.users
	}

	return cfg, nil
}

// applyAddr overrides the server host and port from a host:port flag value.
func applyAddr(cfg *config.Config, addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: -addr: %w", errUsage, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: -addr: invalid port %q", errUsage, portStr)
	}
	cfg.Server.Host = host
	cfg.Server.Port = port
	return nil
}

// initLogging configures the global logger from cfg.
func initLogging(cfg *config.Config) {
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
}
