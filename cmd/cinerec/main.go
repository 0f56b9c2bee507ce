// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package main is the entry point for the cinerec command.
//
// cinerec validates a movie catalog and a user list read from flat text files
// and recommends to each user the movies that share a genre with the movies
// they like.
//
// # Subcommands
//
//	cinerec run   [-config P] [-movies P] [-users P] [-out P] [-format text|json]
//	cinerec serve [-config P] [-movies P] [-users P] [-addr host:port]
//
// run parses both files, builds the catalog and writes one report entry per
// user. The previous report is removed first, so a failed run leaves no
// output file. serve loads the same catalog and exposes it over HTTP until
// SIGINT or SIGTERM.
//
// # Configuration
//
// Settings come from built-in defaults, then an optional YAML file
// (CONFIG_PATH, cinerec.yaml, config.yaml, /etc/cinerec/config.yaml), then
// environment variables such as MOVIES_FILE and LOG_LEVEL. Flags win over all
// three.
//
// # Exit Codes
//
//	0  success
//	1  the pipeline or server failed; the reason is logged
//	2  usage error: unknown subcommand, bad flag or invalid configuration
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks errors that should exit with exitUsage.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := realMain(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// realMain dispatches a subcommand and maps its error to an exit code.
func realMain(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "run":
		err = runCommand(ctx, args[1:], stderr)
	case "serve":
		err = serveCommand(ctx, args[1:], stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stderr)
		return exitOK
	default:
		fmt.Fprintf(stderr, "cinerec: unknown command %q\n\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "cinerec: %v\n", err)
		return exitUsage
	default:
		return exitFailure
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: cinerec <command> [flags]

Commands:
  run     validate the input files and write recommendations
  serve   serve the catalog and recommendations over HTTP

Run "cinerec <command> -h" for the flags of a command.
`)
}
