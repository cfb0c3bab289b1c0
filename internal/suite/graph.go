package suite

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/saucesuite/internal/fixture"
	"github.com/themizzi/saucesuite/internal/pages"
	"github.com/themizzi/saucesuite/internal/scenario"
)

// Standard fixture names
const (
	FixturePage                = "page"
	FixtureLoginPage           = "loginPageFixture"
	FixtureLoggedPage          = "loggedPage"
	FixtureInventoryPage       = "inventoryPageFixture"
	FixtureCheckoutPage        = "checkoutPageFixture"
	FixtureCheckoutStepOnePage = "checkoutStepOnePage"
	FixtureCartPage            = "cartPageFixture"
)

// StandardGraph builds the fixture layering every test draws from:
// page, then a logged-in page, then page objects over it, then a checkout form
// reached with the standard two-item cart.
func StandardGraph(env pages.Env) (*fixture.Graph, error) {
	g := fixture.NewGraph()
	providers := []struct {
		name    string
		deps    []string
		factory fixture.Factory
	}{
		{FixtureLoginPage, []string{FixturePage}, func(_ context.Context, deps fixture.Values) (any, error) {
			page, err := fixture.Dep[playwright.Page](deps, FixturePage)
			if err != nil {
				return nil, err
			}
			return pages.NewLoginPage(page, env)
		}},
		{FixtureLoggedPage, []string{FixturePage}, func(ctx context.Context, deps fixture.Values) (any, error) {
			page, err := fixture.Dep[playwright.Page](deps, FixturePage)
			if err != nil {
				return nil, err
			}
			login, err := pages.NewLoginPage(page, env)
			if err != nil {
				return nil, err
			}
			user := scenario.StandardUser()
			if err := login.LoginAndWaitForInventory(ctx, user.Username, user.Password); err != nil {
				return nil, err
			}
			if err := login.ExpectLoggedIn(); err != nil {
				return nil, err
			}
			return page, nil
		}},
		{FixtureInventoryPage, []string{FixtureLoggedPage}, func(_ context.Context, deps fixture.Values) (any, error) {
			page, err := fixture.Dep[playwright.Page](deps, FixtureLoggedPage)
			if err != nil {
				return nil, err
			}
			return pages.NewInventoryPage(page, env)
		}},
		{FixtureCheckoutPage, []string{FixtureLoggedPage}, func(_ context.Context, deps fixture.Values) (any, error) {
			page, err := fixture.Dep[playwright.Page](deps, FixtureLoggedPage)
			if err != nil {
				return nil, err
			}
			return pages.NewCheckoutPage(page, env)
		}},
		{FixtureCartPage, []string{FixtureLoggedPage}, func(_ context.Context, deps fixture.Values) (any, error) {
			page, err := fixture.Dep[playwright.Page](deps, FixtureLoggedPage)
			if err != nil {
				return nil, err
			}
			return pages.NewCartPage(page, env)
		}},
		{FixtureCheckoutStepOnePage, []string{FixtureLoggedPage, FixtureInventoryPage}, checkoutStepOne(env)},
	}

	if err := g.Seed(FixturePage); err != nil {
		return nil, err
	}
	for _, p := range providers {
		if err := g.Provide(p.name, p.deps, p.factory); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func checkoutStepOne(env pages.Env) fixture.Factory {
	return func(_ context.Context, deps fixture.Values) (any, error) {
		page, err := fixture.Dep[playwright.Page](deps, FixtureLoggedPage)
		if err != nil {
			return nil, err
		}
		inventory, err := fixture.Dep[*pages.InventoryPage](deps, FixtureInventoryPage)
		if err != nil {
			return nil, err
		}
		for _, name := range scenario.CartItems() {
			if err := inventory.AddItemToCart(name); err != nil {
				return nil, fmt.Errorf("failed to fill cart: %w", err)
			}
		}
		if err := inventory.OpenCart(); err != nil {
			return nil, err
		}
		cart, err := pages.NewCartPage(page, env)
		if err != nil {
			return nil, err
		}
		if err := cart.Checkout(); err != nil {
			return nil, err
		}
		return page, nil
	}
}
