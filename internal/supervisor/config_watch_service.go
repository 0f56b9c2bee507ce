// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package supervisor

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinerec/internal/logging"
)

// WatchFunc starts watching path and calls onChange on every change. It
// returns a function that stops the watch. config.WatchConfigFile satisfies it.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// ConfigWatchService keeps a config file watch alive for the lifetime of the
// tree and calls onChange when the file changes.
type ConfigWatchService struct {
	path     string
	watch    WatchFunc
	onChange func()
}

// NewConfigWatchService creates the service.
func NewConfigWatchService(path string, watch WatchFunc, onChange func()) *ConfigWatchService {
	return &ConfigWatchService{path: path, watch: watch, onChange: onChange}
}

// Serve implements suture.Service. A watch that cannot be started is logged
// and not retried.
func (s *ConfigWatchService) Serve(ctx context.Context) error {
	stop, err := s.watch(s.path, s.onChange)
	if err != nil {
		logging.Err(err).Str("path", s.path).Msg("config watch failed, reload disabled")
		return suture.ErrDoNotRestart
	}

	<-ctx.Done()

	if err := stop(); err != nil {
		return fmt.Errorf("stop config watch: %w", err)
	}
	return ctx.Err()
}

// String names the service in supervisor logs.
func (s *ConfigWatchService) String() string {
	return "config-watcher"
}
