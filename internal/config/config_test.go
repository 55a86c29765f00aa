package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rymgap/internal/config"
)

func TestLoadDefaultsUseEnvAPIKeyAndExpandPaths(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCatalog := filepath.Join(tempHome, ".local", "share", "rymgap", "movie_list.csv")
	if cfg.Catalog.Path != wantCatalog {
		t.Fatalf("unexpected catalog path: got %q want %q", cfg.Catalog.Path, wantCatalog)
	}
	if !filepath.IsAbs(cfg.Catalog.ReportPath) {
		t.Fatalf("expected absolute report path, got %q", cfg.Catalog.ReportPath)
	}
	if cfg.OMDb.APIKey != "test-key" {
		t.Fatalf("expected OMDb key from env, got %q", cfg.OMDb.APIKey)
	}
	if cfg.OMDb.BaseURL != config.Default().OMDb.BaseURL {
		t.Fatalf("unexpected OMDb base url: %q", cfg.OMDb.BaseURL)
	}
	if !cfg.RYM.Headless {
		t.Fatal("expected headless browsing by default")
	}
	if cfg.Pacing.RequestDelay != 90 {
		t.Fatalf("unexpected request delay: %d", cfg.Pacing.RequestDelay)
	}
	if cfg.Pacing.UnpacedSpan != 1000 {
		t.Fatalf("unexpected unpaced span: %d", cfg.Pacing.UnpacedSpan)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadParsesFileAndOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	os.Unsetenv("OMDB_API_KEY")

	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[catalog]
path = "~/movies.csv"
report_path = "~/missing.csv"

[omdb]
api_key = "file-key"

[rym]
headless = false
navigate_timeout = 5

[pacing]
request_delay = 1
unpaced_span = 10

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, path)
	}
	if cfg.Catalog.Path != filepath.Join(tempHome, "movies.csv") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Catalog.Path)
	}
	if cfg.OMDb.APIKey != "file-key" {
		t.Fatalf("unexpected api key: %q", cfg.OMDb.APIKey)
	}
	if cfg.RYM.Headless {
		t.Fatal("expected headless disabled")
	}
	if cfg.RYM.NavigateTimeout != 5 {
		t.Fatalf("unexpected navigate timeout: %d", cfg.RYM.NavigateTimeout)
	}
	if cfg.Pacing.RequestDelay != 1 || cfg.Pacing.UnpacedSpan != 10 {
		t.Fatalf("unexpected pacing: %+v", cfg.Pacing)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("OMDB_API_KEY", "")
	os.Unsetenv("OMDB_API_KEY")

	_, _, _, err := config.Load("")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "omdb.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadWithAPIKeyBeatsEnvironment(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "env-key")
	t.Setenv("HOME", t.TempDir())

	cfg, _, _, err := config.LoadWithAPIKey("", "flag-key")
	if err != nil {
		t.Fatalf("LoadWithAPIKey returned error: %v", err)
	}
	if cfg.OMDb.APIKey != "flag-key" {
		t.Fatalf("expected flag key to win, got %q", cfg.OMDb.APIKey)
	}
}

func TestLoadRejectsBadLoggingFormat(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "test-key")
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[logging]\nformat = \"xml\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestCreateSampleWritesParsableConfig(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "test-key")
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.OMDb.BaseURL != config.Default().OMDb.BaseURL {
		t.Fatalf("unexpected base url from sample: %q", cfg.OMDb.BaseURL)
	}
}
