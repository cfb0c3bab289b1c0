package suite

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/fixture"
	"github.com/themizzi/saucesuite/internal/pages"
)

// Fixtures gives one test typed access to its scope. Every accessor fails the
// test at the first error.
type Fixtures struct {
	t     testing.TB
	scope *fixture.Scope
	log   logrus.FieldLogger
}

// NewFixtures starts a scope for t seeded with page. The scope is closed when t finishes.
func NewFixtures(ctx context.Context, t testing.TB, g *fixture.Graph, page playwright.Page, log logrus.FieldLogger) *Fixtures {
	t.Helper()

	scope, err := g.NewScope(ctx, log)
	if err != nil {
		t.Fatalf("invalid fixture graph: %v", err)
	}
	if err := scope.Seed(FixturePage, page); err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
	t.Cleanup(scope.Close)
	return &Fixtures{t: t, scope: scope, log: log}
}

// Scope returns the underlying fixture scope
func (f *Fixtures) Scope() *fixture.Scope {
	return f.scope
}

// Step runs one named step of the test
func (f *Fixtures) Step(desc string, fn func() error) {
	f.t.Helper()
	Step(f.t, f.log, desc, fn)
}

func get[T any](f *Fixtures, name string) T {
	f.t.Helper()
	v, err := fixture.Get[T](f.scope, name)
	if err != nil {
		f.t.Fatalf("fixture %s: %v", name, err)
	}
	return v
}

// Page is the raw page, not logged in
func (f *Fixtures) Page() playwright.Page {
	f.t.Helper()
	return get[playwright.Page](f, FixturePage)
}

// LoginPage is a login page object over the raw page
func (f *Fixtures) LoginPage() *pages.LoginPage {
	f.t.Helper()
	return get[*pages.LoginPage](f, FixtureLoginPage)
}

// LoggedPage is the page after the standard user logged in
func (f *Fixtures) LoggedPage() playwright.Page {
	f.t.Helper()
	return get[playwright.Page](f, FixtureLoggedPage)
}

// InventoryPage is an inventory page object over the logged-in page
func (f *Fixtures) InventoryPage() *pages.InventoryPage {
	f.t.Helper()
	return get[*pages.InventoryPage](f, FixtureInventoryPage)
}

// CheckoutPage is a checkout page object over the logged-in page
func (f *Fixtures) CheckoutPage() *pages.CheckoutPage {
	f.t.Helper()
	return get[*pages.CheckoutPage](f, FixtureCheckoutPage)
}

// CartPage is a cart page object over the logged-in page
func (f *Fixtures) CartPage() *pages.CartPage {
	f.t.Helper()
	return get[*pages.CartPage](f, FixtureCartPage)
}

// CheckoutStepOnePage is the logged-in page on the customer form with the standard cart
func (f *Fixtures) CheckoutStepOnePage() playwright.Page {
	f.t.Helper()
	return get[playwright.Page](f, FixtureCheckoutStepOnePage)
}
