package rym

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"rymgap/internal/logging"
)

// Config configures the browser-backed search client.
type Config struct {
	// BaseURL is the site root carrying the search form.
	BaseURL string

	// Headless controls whether Chrome runs without a window. Default: true
	// (set via NewClient when the zero Config is used).
	Headless bool

	// NavigateTimeout bounds each page load. Default: 30s.
	NavigateTimeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = "https://rateyourmusic.com/"
	}
	if c.NavigateTimeout <= 0 {
		c.NavigateTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = logging.NewNop()
	}
}

// Client drives the site's search form through a headless browser. Each
// search opens a fresh stealth page, so no state leaks between queries.
type Client struct {
	cfg     Config
	browser *rod.Browser
	lnch    *launcher.Launcher
}

// NewClient creates a search client. Call Start before searching.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// Start launches Chrome and connects to it.
func (c *Client) Start(ctx context.Context) error {
	if c.browser != nil {
		return errors.New("rym: client already started")
	}

	l := launcher.New().Headless(c.cfg.Headless)
	l = l.Set("disable-blink-features", "AutomationControlled")

	wsURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("rym: launch browser: %w", err)
	}
	c.lnch = l

	b := rod.New().ControlURL(wsURL).Context(ctx)
	if err := b.Connect(); err != nil {
		c.lnch.Cleanup()
		c.lnch = nil
		return fmt.Errorf("rym: connect browser: %w", err)
	}
	if err := b.IgnoreCertErrors(true); err != nil {
		c.cfg.Logger.Warn("rym: ignore cert errors failed", "error", err)
	}

	c.browser = b
	c.cfg.Logger.Info("rym: browser launched", "headless", c.cfg.Headless)
	return nil
}

// Close shuts the browser down.
func (c *Client) Close() error {
	var err error
	if c.browser != nil {
		err = c.browser.Close()
		c.browser = nil
	}
	if c.lnch != nil {
		c.lnch.Cleanup()
		c.lnch = nil
	}
	return err
}

// SearchFilm submits a film search for the given title and returns the
// parsed search-results region.
func (c *Client) SearchFilm(ctx context.Context, title string) (*Fragment, error) {
	if c.browser == nil {
		return nil, errors.New("rym: client not started")
	}

	page, err := stealth.Page(c.browser)
	if err != nil {
		return nil, fmt.Errorf("rym: create page: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, c.cfg.NavigateTimeout)
	defer cancel()
	page = page.Context(navCtx)

	if err := page.Navigate(c.cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("rym: navigate %s: %w", c.cfg.BaseURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("rym: wait for page load: %w", err)
	}

	searchbar, err := page.Element(`input[name="searchterm"]`)
	if err != nil {
		return nil, fmt.Errorf("rym: find search bar: %w", err)
	}
	if err := searchbar.Input(title); err != nil {
		return nil, fmt.Errorf("rym: type query: %w", err)
	}

	// Hovering the options frame reveals the per-category search buttons.
	if frame, err := page.Element(".search_options_frame"); err == nil {
		if err := frame.Hover(); err != nil {
			c.cfg.Logger.Debug("rym: hover search options failed", "error", err)
		}
	}
	filmType, err := page.Element("#searchtype_F")
	if err != nil {
		return nil, fmt.Errorf("rym: find film search type: %w", err)
	}
	if err := filmType.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return nil, fmt.Errorf("rym: select film search type: %w", err)
	}

	submit, err := page.Element("#mainsearch_submit")
	if err != nil {
		return nil, fmt.Errorf("rym: find search submit: %w", err)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return nil, fmt.Errorf("rym: submit search: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("rym: wait for results: %w", err)
	}

	results, err := page.Element("#searchresults")
	if err != nil {
		return nil, fmt.Errorf("rym: find search results: %w", err)
	}
	markup, err := results.HTML()
	if err != nil {
		return nil, fmt.Errorf("rym: read search results: %w", err)
	}

	c.cfg.Logger.Debug("rym: search completed", "title", title)
	return ParseResults(markup)
}
