// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package supervisor runs the long-lived parts of "cinerec serve" under a
suture v4 supervisor tree.

	Tree ("cinerec")
	├── api-layer
	│   └── HTTPServerService
	└── control-layer
	    └── ConfigWatchService (when a config file is in use)

A crashed service is restarted with backoff; a failure in the control layer
does not stop the API. Supervisor events are logged through sutureslog using
a zerolog-backed slog.Logger from the logging package.

	tree, err := supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(supervisor.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
