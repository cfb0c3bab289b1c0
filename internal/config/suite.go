package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mstoykov/envconfig"
)

// Target selects which storefront the suite drives
type Target string

// Supported targets
const (
	TargetReplica Target = "replica"
	TargetRemote  Target = "remote"
)

// DefaultBaseURL is the public demo storefront
const DefaultBaseURL = "https://www.saucedemo.com/"

// SuiteConfig holds configuration for the browser suite
type SuiteConfig struct {
	BaseURL  string        `envconfig:"SAUCE_BASE_URL"`
	Target   Target        `envconfig:"SAUCE_TARGET"`
	Headless bool          `envconfig:"SAUCE_BROWSER_HEADLESS"`
	SlowMo   time.Duration `envconfig:"SAUCE_SLOW_MO"`

	// DefaultTimeout bounds every locator action and assertion that does not override it.
	DefaultTimeout    time.Duration `envconfig:"SAUCE_DEFAULT_TIMEOUT"`
	NavigationTimeout time.Duration `envconfig:"SAUCE_NAVIGATION_TIMEOUT"`
	LoginWaitTimeout  time.Duration `envconfig:"SAUCE_LOGIN_WAIT_TIMEOUT"`
	MarkerTimeout     time.Duration `envconfig:"SAUCE_MARKER_TIMEOUT"`
	// MenuCloseTimeout bounds the side menu close click, which trails a slide animation.
	MenuCloseTimeout  time.Duration `envconfig:"SAUCE_MENU_CLOSE_TIMEOUT"`

	APIChecks bool `envconfig:"SAUCE_API_CHECKS"`

	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`
}

// DefaultSuiteConfig returns the configuration used when no environment overrides are set
func DefaultSuiteConfig() SuiteConfig {
	return SuiteConfig{
		BaseURL:           DefaultBaseURL,
		Target:            TargetReplica,
		Headless:          true,
		DefaultTimeout:    10 * time.Second,
		NavigationTimeout: 60 * time.Second,
		LoginWaitTimeout:  55 * time.Second,
		MarkerTimeout:     10 * time.Second,
		MenuCloseTimeout:  5 * time.Second,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// LoadSuiteConfig loads suite configuration, overlaying environment values on the defaults
func LoadSuiteConfig(lookup func(string) (string, bool)) (*SuiteConfig, error) {
	cfg := DefaultSuiteConfig()

	apiChecksSet := false
	tracked := func(key string) (string, bool) {
		v, ok := lookup(key)
		if key == "SAUCE_API_CHECKS" && ok {
			apiChecksSet = true
		}
		return v, ok
	}
	if err := envconfig.Process("", &cfg, tracked); err != nil {
		return nil, fmt.Errorf("failed to read suite environment: %w", err)
	}

	// The replica implements the API surface, the public site may not.
	if !apiChecksSet {
		cfg.APIChecks = cfg.Target == TargetReplica
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and normalizes the base URL to end with a slash
func (c *SuiteConfig) Validate() error {
	switch c.Target {
	case TargetReplica, TargetRemote:
	default:
		return fmt.Errorf("SAUCE_TARGET must be %q or %q, got %q", TargetReplica, TargetRemote, c.Target)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("SAUCE_BASE_URL is invalid: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SAUCE_BASE_URL must be absolute, got %q", c.BaseURL)
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}

	for name, d := range map[string]time.Duration{
		"SAUCE_DEFAULT_TIMEOUT":    c.DefaultTimeout,
		"SAUCE_NAVIGATION_TIMEOUT": c.NavigationTimeout,
		"SAUCE_LOGIN_WAIT_TIMEOUT": c.LoginWaitTimeout,
		"SAUCE_MARKER_TIMEOUT":     c.MarkerTimeout,
		"SAUCE_MENU_CLOSE_TIMEOUT": c.MenuCloseTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}

// Milliseconds converts a duration into the float milliseconds Playwright options expect
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
