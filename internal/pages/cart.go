package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/saucesuite/internal/locator"
)

// Cart page element names
const (
	LocCartItem         = "cartItem"
	LocCheckoutButton   = "checkoutButton"
	LocContinueShopping = "continueShopping"
	LocCartLine         = "cartLine"
	// Fields of one cart line, resolved within LocCartLine
	LocItemQuantity = "itemQuantity"
	LocItemPrice    = "itemPrice"
	LocItemDesc     = "itemDesc"
)

// CartLocators is the default cart page registry
func CartLocators() *locator.Registry {
	return locator.NewRegistry("cart", map[string]locator.Strategy{
		LocCartItem:         locator.ByTestHook("inventory-item"),
		LocCheckoutButton:   locator.ByRole(locator.RoleButton, "Checkout"),
		LocContinueShopping: locator.ByRole(locator.RoleButton, "Continue Shopping"),
		LocItemQuantity:     locator.ByTestHook("item-quantity").First(),
		LocItemPrice:        locator.ByTestHook("inventory-item-price").First(),
		LocItemDesc:         locator.ByTestHook("inventory-item-desc").First(),
	}).WithTemplates(map[string]locator.Template{
		LocCartLine: func(name string) locator.Strategy {
			return locator.ByTestHook("inventory-item").
				Has(locator.ByTestHook("inventory-item-name").WithText(name))
		},
	})
}

// CartPage drives the cart listing
type CartPage struct {
	base
}

// NewCartPage builds a cart page object over page
func NewCartPage(page playwright.Page, env Env) (*CartPage, error) {
	b, err := newBase("cart", page, env.Locators.Cart, CartLocators(), []string{
		LocCartItem, LocCheckoutButton, LocContinueShopping, LocCartLine,
		LocItemQuantity, LocItemPrice, LocItemDesc,
	}, env)
	if err != nil {
		return nil, err
	}
	return &CartPage{base: b}, nil
}

// AssertOnPage checks the cart URL
func (p *CartPage) AssertOnPage() error {
	return p.expectURL(p.site.Cart())
}

// AssertItemCount checks the number of cart lines
func (p *CartPage) AssertItemCount(n int) error {
	return p.expectCount(LocCartItem, n)
}

// AssertItemDetails checks one cart line's quantity and price exactly and its
// description by containment
func (p *CartPage) AssertItemDetails(name, qty, price, descFragment string) error {
	line := p.loc.Template(LocCartLine, name)
	if err := p.wrap("expect line "+name, p.expect.Locator(line.Resolve(p.page)).ToBeVisible()); err != nil {
		return err
	}
	if err := p.wrap(name+" quantity", p.expect.Locator(p.loc.Within(LocItemQuantity, line)).ToHaveText(qty)); err != nil {
		return err
	}
	if err := p.wrap(name+" price", p.expect.Locator(p.loc.Within(LocItemPrice, line)).ToHaveText(price)); err != nil {
		return err
	}
	return p.wrap(name+" description", p.expect.Locator(p.loc.Within(LocItemDesc, line)).ToContainText(descFragment))
}

// Checkout proceeds to the customer information form
func (p *CartPage) Checkout() error {
	if err := p.click(LocCheckoutButton); err != nil {
		return err
	}
	return p.expectURL(p.site.CheckoutStepOne())
}

// ContinueShopping returns to the inventory
func (p *CartPage) ContinueShopping() error {
	if err := p.click(LocContinueShopping); err != nil {
		return err
	}
	return p.expectURL(p.site.Inventory())
}
