// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tomtom215/cinerec/internal/api"
	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/parser"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/supervisor"
)

// serveCommand implements "cinerec serve".
func serveCommand(ctx context.Context, args []string, stderr io.Writer) error {
	fset := newFlagSet("serve", stderr)
	var common commonFlags
	common.register(fset)
	addr := fset.String("addr", "", "listen address host:port (overrides HTTP_HOST and HTTP_PORT)")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fset.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fset.Args())
	}

	cfg, err := loadConfig(&common)
	if err != nil {
		return err
	}
	if *addr != "" {
		if err := applyAddr(cfg, *addr); err != nil {
			return err
		}
	}

	initLogging(cfg)

	if err := serve(ctx, cfg); err != nil {
		logging.Err(err).Msg("server failed")
		return err
	}
	return nil
}

// buildServer loads the catalog named by cfg and returns the HTTP server
// that serves it.
func buildServer(cfg *config.Config) (*http.Server, error) {
	res, err := parser.ParseFiles(cfg.Input.MoviesFile, cfg.Input.UsersFile)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.FromParseResult(res, logging.WithComponent("catalog"))
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(&recommend.Config{MaxResults: cfg.Recommend.MaxResults}, logging.Logger())
	if err != nil {
		return nil, err
	}

	handler := api.NewHandler(cat, engine, logging.Logger())
	router := api.NewRouter(handler, &api.RouterConfig{
		Timeout:            cfg.Server.Timeout,
		CORSAllowedOrigins: cfg.Server.AllowedOrigins(),
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Server.RateLimitRequests,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
	})

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// serve runs the HTTP server, and a config watcher when a config file is in
// use, under a supervisor tree until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config) error {
	server, err := buildServer(cfg)
	if err != nil {
		return err
	}

	tree, err := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(supervisor.NewHTTPServerService(server, 10*time.Second))

	if path := config.FindConfigFile(); path != "" {
		tree.AddControlService(supervisor.NewConfigWatchService(path, config.WatchConfigFile, reloadLogging))
		logging.Info().Str("path", path).Msg("watching config file for log settings")
	}

	logging.Info().Str("addr", server.Addr).Msg("serving catalog")

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("services failed to stop within timeout")
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}

	logging.Info().Msg("server stopped")
	return nil
}

// reloadLogging re-reads the configuration and applies its logging settings.
// Other settings need a restart.
func reloadLogging() {
	cfg, err := config.Load()
	if err != nil {
		logging.Err(err).Msg("config reload failed, keeping current settings")
		return
	}

	initLogging(cfg)
	logging.Info().
		Str("level", cfg.Logging.Level).
		Str("format", cfg.Logging.Format).
		Msg("logging configuration reloaded")
}
