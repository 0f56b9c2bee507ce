// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package config provides configuration loading for cinerec.

Configuration is layered with koanf, later layers overriding earlier ones:

 1. struct defaults (defaultConfig)
 2. an optional YAML file
 3. environment variables

Command-line flags are applied by cmd/cinerec after loading.

# Config File

The file is taken from CONFIG_PATH, or the first of cinerec.yaml, config.yaml
and /etc/cinerec/config.yaml that exists:

	input:
	  movies_file: movies.txt
	  users_file: users.txt
	output:
	  file: recommendations.txt
	  format: text
	recommend:
	  max_results: 0
	server:
	  host: 127.0.0.1
	  port: 8080
	  timeout: 30s
	metrics:
	  textfile: ""
	logging:
	  level: info
	  format: json
	  caller: false

# Environment Variables

  - MOVIES_FILE, USERS_FILE: input paths
  - OUTPUT_FILE, OUTPUT_FORMAT: report path and format (text, json)
  - RECOMMEND_MAX_RESULTS: per-user cap, 0 for unlimited
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT: serve mode listener
  - CORS_ORIGINS: comma-separated allowed origins, empty disables CORS
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP limit on API writes, 0 disables
  - METRICS_TEXTFILE: Prometheus textfile written after a batch run
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER: logging

Unmapped environment variables are ignored.
*/
package config
