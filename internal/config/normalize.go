package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeOMDb()
	c.normalizeRYM()
	c.normalizePacing()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = defaultCatalogPath
	}
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	if strings.TrimSpace(c.Catalog.ReportPath) == "" {
		c.Catalog.ReportPath = defaultReportPath
	}
	if c.Catalog.ReportPath, err = expandPath(c.Catalog.ReportPath); err != nil {
		return fmt.Errorf("catalog.report_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeOMDb() {
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDb.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
}

func (c *Config) normalizeRYM() {
	c.RYM.BaseURL = strings.TrimSpace(c.RYM.BaseURL)
	if c.RYM.BaseURL == "" {
		c.RYM.BaseURL = defaultRYMBaseURL
	}
	if c.RYM.NavigateTimeout <= 0 {
		c.RYM.NavigateTimeout = defaultNavigateTimeout
	}
}

func (c *Config) normalizePacing() {
	if c.Pacing.RequestDelay < 0 {
		c.Pacing.RequestDelay = defaultRequestDelay
	}
	if c.Pacing.UnpacedSpan < 0 {
		c.Pacing.UnpacedSpan = defaultUnpacedSpan
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
