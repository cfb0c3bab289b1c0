// Package suite wires configuration, the browser, the fixture graph and the
// page objects together for the end-to-end tests.
package suite

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/logging"
)

// Browser owns the Playwright driver and one Chromium instance shared by all tests
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.SuiteConfig
	log     *logrus.Entry
}

// LaunchBrowser starts Playwright and launches Chromium
func LaunchBrowser(cfg *config.SuiteConfig, log logrus.FieldLogger) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(config.Milliseconds(cfg.SlowMo))
	}
	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	entry := logging.Category(log, "browser")
	entry.WithField("version", browser.Version()).WithField("headless", cfg.Headless).Info("chromium launched")
	return &Browser{pw: pw, browser: browser, cfg: cfg, log: entry}, nil
}

// NewPage opens a page in a fresh browser context owned by t. The context is
// closed when t finishes, so no cookies or storage leak between tests.
func (b *Browser) NewPage(t testing.TB) (playwright.Page, error) {
	t.Helper()

	bctx, err := b.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	t.Cleanup(func() {
		if err := bctx.Close(); err != nil {
			b.log.WithError(err).WithField("test", t.Name()).Warn("failed to close browser context")
		}
	})
	bctx.SetDefaultTimeout(config.Milliseconds(b.cfg.DefaultTimeout))
	bctx.SetDefaultNavigationTimeout(config.Milliseconds(b.cfg.NavigationTimeout))

	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return page, nil
}

// Close shuts the browser and the driver down
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		_ = b.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}
