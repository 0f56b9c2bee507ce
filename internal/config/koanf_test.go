// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Input.MoviesFile != "movies.txt" {
		t.Errorf("Input.MoviesFile = %q, want movies.txt", cfg.Input.MoviesFile)
	}
	if cfg.Input.UsersFile != "users.txt" {
		t.Errorf("Input.UsersFile = %q, want users.txt", cfg.Input.UsersFile)
	}
	if cfg.Output.File != "recommendations.txt" {
		t.Errorf("Output.File = %q, want recommendations.txt", cfg.Output.File)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Recommend.MaxResults != 0 {
		t.Errorf("Recommend.MaxResults = %d, want 0", cfg.Recommend.MaxResults)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Server.RateLimitRequests != 60 || cfg.Server.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v, want 60 per 1m", cfg.Server.RateLimitRequests, cfg.Server.RateLimitWindow)
	}
	if cfg.Server.CORSOrigins != "" {
		t.Errorf("Server.CORSOrigins = %q, want empty", cfg.Server.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"MOVIES_FILE", "input.movies_file"},
		{"USERS_FILE", "input.users_file"},
		{"OUTPUT_FILE", "output.file"},
		{"OUTPUT_FORMAT", "output.format"},
		{"RECOMMEND_MAX_RESULTS", "recommend.max_results"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_PORT", "server.port"},
		{"HTTP_TIMEOUT", "server.timeout"},
		{"METRICS_TEXTFILE", "metrics.textfile"},
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(ConfigPathEnvVar, "")

		if got := FindConfigFile(); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})

	t.Run("finds cinerec.yaml in working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv(ConfigPathEnvVar, "")
		if err := os.WriteFile("cinerec.yaml", []byte("logging:\n  level: debug\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(); got != "cinerec.yaml" {
			t.Errorf("FindConfigFile() = %q, want cinerec.yaml", got)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.WriteFile("config.yaml", []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		customPath := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if got := FindConfigFile(); got != customPath {
			t.Errorf("FindConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file falls back", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if got := FindConfigFile(); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("MOVIES_FILE", "/data/movies.txt")
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("RECOMMEND_MAX_RESULTS", "5")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Input.MoviesFile != "/data/movies.txt" {
		t.Errorf("Input.MoviesFile = %q", cfg.Input.MoviesFile)
	}
	if cfg.Input.UsersFile != "users.txt" {
		t.Errorf("Input.UsersFile = %q, want default", cfg.Input.UsersFile)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Recommend.MaxResults != 5 {
		t.Errorf("Recommend.MaxResults = %d", cfg.Recommend.MaxResults)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 5*time.Second {
		t.Errorf("Server.Timeout = %v", cfg.Server.Timeout)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Caller {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configPath := filepath.Join(dir, "cinerec.yaml")
	configContent := `
input:
  movies_file: in/movies.txt
  users_file: in/users.txt
output:
  file: out/recs.json
  format: json
server:
  host: 0.0.0.0
  port: 8181
  timeout: 10s
metrics:
  textfile: /tmp/cinerec.prom
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Input.MoviesFile != "in/movies.txt" || cfg.Input.UsersFile != "in/users.txt" {
		t.Errorf("Input = %+v", cfg.Input)
	}
	if cfg.Output.File != "out/recs.json" || cfg.Output.Format != "json" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Server.Addr() != "0.0.0.0:8181" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Server.Timeout != 10*time.Second {
		t.Errorf("Server.Timeout = %v", cfg.Server.Timeout)
	}
	if cfg.Metrics.Textfile != "/tmp/cinerec.prom" {
		t.Errorf("Metrics.Textfile = %q", cfg.Metrics.Textfile)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8181\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 from env", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error from env", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	configPath := filepath.Join(dir, "cinerec.yaml")
	if err := os.WriteFile(configPath, []byte("server: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	if _, err := LoadWithKoanf(); err == nil || !strings.Contains(err.Error(), "failed to load config file") {
		t.Errorf("LoadWithKoanf() error = %v, want config file error", err)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad output format", map[string]string{"OUTPUT_FORMAT": "xml"}, "OUTPUT_FORMAT"},
		{"negative max results", map[string]string{"RECOMMEND_MAX_RESULTS": "-1"}, "RECOMMEND_MAX_RESULTS"},
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"zero timeout", map[string]string{"HTTP_TIMEOUT": "0s"}, "HTTP_TIMEOUT"},
		{"negative rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "-5"}, "RATE_LIMIT_REQUESTS"},
		{"zero rate window", map[string]string{"RATE_LIMIT_WINDOW": "0s"}, "RATE_LIMIT_WINDOW"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"empty movies file", map[string]string{"MOVIES_FILE": " "}, "MOVIES_FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfigAllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ", nil},
		{"https://a.example", []string{"https://a.example"}},
		{"https://a.example, https://b.example,", []string{"https://a.example", "https://b.example"}},
	}

	for _, tt := range tests {
		got := ServerConfig{CORSOrigins: tt.in}.AllowedOrigins()
		if !slices.Equal(got, tt.want) {
			t.Errorf("AllowedOrigins(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWatchConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinerec.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	stop, err := WatchConfigFile(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchConfigFile() error = %v", err)
	}
	defer func() {
		if err := stop(); err != nil {
			t.Errorf("stop() error = %v", err)
		}
	}()

	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Error("callback not invoked after file change")
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
}
