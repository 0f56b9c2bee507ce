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
	"io/fs"
	"os"
	"time"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/parser"
	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/report"
)

// runCommand implements "cinerec run".
func runCommand(ctx context.Context, args []string, stderr io.Writer) error {
	fset := newFlagSet("run", stderr)
	var common commonFlags
	common.register(fset)
	out := fset.String("out", "", "report output file")
	format := fset.String("format", "", "report format: text or json")

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
	if *out != "" {
		cfg.Output.File = *out
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if _, err := report.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	initLogging(cfg)

	if err := runBatch(ctx, cfg); err != nil {
		logging.Err(err).Msg("batch run failed")
		return err
	}
	return nil
}

// runBatch parses the inputs, builds the catalog, computes recommendations
// for every user and writes the report. Any stale report is removed before
// parsing so that a failed run leaves no output behind.
func runBatch(ctx context.Context, cfg *config.Config) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := logging.Ctx(ctx)
	start := time.Now()

	if err := os.Remove(cfg.Output.File); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale output: %w", err)
	}

	logger.Info().
		Str("movies", cfg.Input.MoviesFile).
		Str("users", cfg.Input.UsersFile).
		Msg("parsing input")

	res, err := parser.ParseFiles(cfg.Input.MoviesFile, cfg.Input.UsersFile)
	if err != nil {
		return err
	}

	cat, err := catalog.FromParseResult(res, logging.WithComponent("catalog"))
	if err != nil {
		return err
	}

	engine, err := recommend.NewEngine(&recommend.Config{MaxResults: cfg.Recommend.MaxResults}, logging.Logger())
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run canceled: %w", err)
	}

	results := engine.RecommendAll(ctx, cat)

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := report.WriteFile(cfg.Output.File, format, results); err != nil {
		return err
	}

	metrics.RecordBatchSuccess()
	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
	}

	logger.Info().
		Str("output", cfg.Output.File).
		Str("format", string(format)).
		Int("users", len(results)).
		Dur("duration", time.Since(start)).
		Msg("batch run complete")

	return nil
}
