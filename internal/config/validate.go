package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateRYM(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return errors.New("catalog.path must be set")
	}
	if c.Catalog.ReportPath == "" {
		return errors.New("catalog.report_path must be set")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	if c.OMDb.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/rymgap/config.toml"
		}
		return fmt.Errorf("omdb.api_key is required. Set OMDB_API_KEY env var or edit %s (create with 'rymgap config init')", defaultPath)
	}
	if c.OMDb.BaseURL == "" {
		return errors.New("omdb.base_url must be set")
	}
	return nil
}

func (c *Config) validateRYM() error {
	if c.RYM.BaseURL == "" {
		return errors.New("rym.base_url must be set")
	}
	if c.RYM.NavigateTimeout <= 0 {
		return errors.New("rym.navigate_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
