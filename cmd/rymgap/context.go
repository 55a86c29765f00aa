package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"rymgap/internal/config"
	"rymgap/internal/logging"
)

type commandContext struct {
	configFlag *string
	apiKeyFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, apiKeyFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		apiKeyFlag: apiKeyFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if c.apiKeyFlag != nil && strings.TrimSpace(*c.apiKeyFlag) != "" {
			cfg, _, _, err := config.LoadWithAPIKey(path, strings.TrimSpace(*c.apiKeyFlag))
			c.config, c.configErr = cfg, err
			return
		}
		cfg, _, _, err := config.Load(path)
		c.config, c.configErr = cfg, err
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
