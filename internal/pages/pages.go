// Package pages contains the page objects the suite drives the storefront
// through. Every action and assertion returns the first error it meets; none
// are retried beyond Playwright's own auto-waiting.
package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/locator"
	"github.com/themizzi/saucesuite/internal/logging"
)

var (
	// ErrUnknownItem is returned when an item has no entry in the cart hook table
	ErrUnknownItem = errors.New("unknown inventory item")
	// ErrInvalidSort is returned for a sort value outside az, za, lohi and hilo
	ErrInvalidSort = errors.New("invalid sort value")
)

// Site resolves storefront page URLs against a base URL ending in a slash
type Site struct {
	Base string
}

// URL returns path relative to the base
func (s Site) URL(path string) string { return s.Base + path }

// Login is the login page, which is the site root
func (s Site) Login() string { return s.Base }

// Inventory is the product listing
func (s Site) Inventory() string { return s.URL("inventory.html") }

// Cart is the cart page
func (s Site) Cart() string { return s.URL("cart.html") }

// CheckoutStepOne is the customer information form
func (s Site) CheckoutStepOne() string { return s.URL("checkout-step-one.html") }

// CheckoutStepTwo is the order overview
func (s Site) CheckoutStepTwo() string { return s.URL("checkout-step-two.html") }

// CheckoutComplete is the order confirmation
func (s Site) CheckoutComplete() string { return s.URL("checkout-complete.html") }

// Timeouts bound the page object interactions that override the context default
type Timeouts struct {
	Default    time.Duration
	Navigation time.Duration
	LoginWait  time.Duration
	Marker     time.Duration
	MenuClose  time.Duration
}

// Locators overrides the registries page objects are built from. Nil fields use the defaults.
type Locators struct {
	Login     *locator.Registry
	Inventory *locator.Registry
	Cart      *locator.Registry
	Checkout  *locator.Registry
}

// Env is what every page object needs besides the page handle
type Env struct {
	Site      Site
	Timeouts  Timeouts
	CartHooks CartHooks
	Locators  Locators
	Log       logrus.FieldLogger
}

// NewEnv builds the page environment from suite configuration
func NewEnv(cfg *config.SuiteConfig, log logrus.FieldLogger) Env {
	return Env{
		Site: Site{Base: cfg.BaseURL},
		Timeouts: Timeouts{
			Default:    cfg.DefaultTimeout,
			Navigation: cfg.NavigationTimeout,
			LoginWait:  cfg.LoginWaitTimeout,
			Marker:     cfg.MarkerTimeout,
			MenuClose:  cfg.MenuCloseTimeout,
		},
		CartHooks: DefaultCartHooks(),
		Log:       log,
	}
}

// base is embedded by every page object
type base struct {
	name     string
	page     playwright.Page
	loc      *locator.Bound
	site     Site
	timeouts Timeouts
	expect   playwright.PlaywrightAssertions
	log      *logrus.Entry
}

func newBase(name string, page playwright.Page, reg, fallback *locator.Registry, required []string, env Env) (base, error) {
	if reg == nil {
		reg = fallback
	}
	if err := reg.Require(required...); err != nil {
		return base{}, err
	}
	var assertions playwright.PlaywrightAssertions
	if env.Timeouts.Default > 0 {
		assertions = playwright.NewPlaywrightAssertions(config.Milliseconds(env.Timeouts.Default))
	} else {
		assertions = playwright.NewPlaywrightAssertions()
	}
	return base{
		name:     name,
		page:     page,
		loc:      reg.Bind(page),
		site:     env.Site,
		timeouts: env.Timeouts,
		expect:   assertions,
		log:      logging.Category(env.Log, "page").WithField("page", name),
	}, nil
}

// Page returns the underlying page handle
func (b *base) Page() playwright.Page {
	return b.page
}

func (b *base) wrap(action string, err error) error {
	if err != nil {
		return fmt.Errorf("%s page: %s: %w", b.name, action, err)
	}
	return nil
}

func (b *base) click(name string, opts ...playwright.LocatorClickOptions) error {
	b.log.WithField("element", name).Debug("click")
	return b.wrap("click "+b.loc.Describe(name), b.loc.Get(name).Click(opts...))
}

func (b *base) fill(name, value string) error {
	b.log.WithField("element", name).Debug("fill")
	return b.wrap("fill "+b.loc.Describe(name), b.loc.Get(name).Fill(value))
}

func (b *base) waitVisible(name string) error {
	return b.wrap("wait for "+b.loc.Describe(name), b.loc.Get(name).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}))
}

func (b *base) goTo(url string) error {
	b.log.WithField("url", url).Debug("goto")
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(config.Milliseconds(b.timeouts.Navigation)),
	})
	return b.wrap("goto "+url, err)
}

// AssertURL checks the page is at exactly url
func (b *base) AssertURL(url string) error {
	return b.expectURL(url)
}

func (b *base) expectURL(url string) error {
	return b.wrap("expect URL "+url, b.expect.Page(b.page).ToHaveURL(url))
}

func (b *base) expectVisible(name string) error {
	return b.wrap("expect visible "+b.loc.Describe(name), b.expect.Locator(b.loc.Get(name)).ToBeVisible())
}

func (b *base) expectText(name, text string) error {
	return b.wrap(fmt.Sprintf("expect %s to have text %q", b.loc.Describe(name), text),
		b.expect.Locator(b.loc.Get(name)).ToHaveText(text))
}

func (b *base) expectContains(name, text string) error {
	return b.wrap(fmt.Sprintf("expect %s to contain %q", b.loc.Describe(name), text),
		b.expect.Locator(b.loc.Get(name)).ToContainText(text))
}

func (b *base) expectCount(name string, n int) error {
	return b.wrap(fmt.Sprintf("expect %d of %s", n, b.loc.Describe(name)),
		b.expect.Locator(b.loc.Get(name)).ToHaveCount(n))
}
