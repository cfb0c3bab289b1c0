package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/locator"
)

// Inventory page element names
const (
	LocCartLink       = "cartLink"
	LocCartBadge      = "cartBadge"
	LocSortSelect     = "sortSelect"
	LocInventoryItem  = "inventoryItem"
	LocFirstItemName  = "firstItemName"
	LocLastItemName   = "lastItemName"
	LocTitle          = "title"
	LocAddToCart      = "addToCart"
	LocRemoveFromCart = "removeFromCart"
)

// InventoryLocators is the default inventory page registry
func InventoryLocators() *locator.Registry {
	name := locator.ByCSS(".inventory_item_name")
	return locator.NewRegistry("inventory", map[string]locator.Strategy{
		LocCartLink:      locator.ByTestHook("shopping-cart-link"),
		LocCartBadge:     locator.ByTestHook("shopping-cart-badge"),
		LocSortSelect:    locator.ByTestHook("product-sort-container"),
		LocInventoryItem: locator.ByTestHook("inventory-item"),
		LocFirstItemName: name.First(),
		LocLastItemName:  name.Last(),
		LocTitle:         locator.ByText("Products").Exact(),
	}).WithTemplates(map[string]locator.Template{
		LocAddToCart:      locator.ByTestHook,
		LocRemoveFromCart: locator.ByTestHook,
	})
}

// InventoryPage drives the product listing
type InventoryPage struct {
	base
	hooks CartHooks
}

// NewInventoryPage builds an inventory page object over page
func NewInventoryPage(page playwright.Page, env Env) (*InventoryPage, error) {
	b, err := newBase("inventory", page, env.Locators.Inventory, InventoryLocators(), []string{
		LocCartLink, LocCartBadge, LocSortSelect, LocInventoryItem,
		LocFirstItemName, LocLastItemName, LocTitle, LocAddToCart, LocRemoveFromCart,
	}, env)
	if err != nil {
		return nil, err
	}
	hooks := env.CartHooks
	if hooks == nil {
		hooks = DefaultCartHooks()
	}
	return &InventoryPage{base: b, hooks: hooks}, nil
}

// AssertOnPage checks the inventory URL and title
func (p *InventoryPage) AssertOnPage() error {
	if err := p.expectURL(p.site.Inventory()); err != nil {
		return err
	}
	return p.expectVisible(LocTitle)
}

// AddItemToCart clicks the add button of the item with the given display name
func (p *InventoryPage) AddItemToCart(name string) error {
	hooks, err := p.hooks.Lookup(name)
	if err != nil {
		return err
	}
	p.log.WithField("item", name).Info("add to cart")
	return p.wrap("add "+name, p.loc.Format(LocAddToCart, hooks.Add).Click())
}

// RemoveItemFromCart clicks the remove button of the item with the given display name
func (p *InventoryPage) RemoveItemFromCart(name string) error {
	hooks, err := p.hooks.Lookup(name)
	if err != nil {
		return err
	}
	p.log.WithField("item", name).Info("remove from cart")
	return p.wrap("remove "+name, p.loc.Format(LocRemoveFromCart, hooks.Remove).Click())
}

// SortProducts selects order in the sort control and checks the control took the value
func (p *InventoryPage) SortProducts(order catalog.SortOrder) error {
	if _, err := catalog.ParseSortOrder(string(order)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSort, order)
	}
	value := string(order)
	sel := p.loc.Get(LocSortSelect)
	if _, err := sel.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}}); err != nil {
		return p.wrap("select sort "+value, err)
	}
	return p.wrap("expect sort "+value, p.expect.Locator(sel).ToHaveValue(value))
}

// AssertFirstAndLast checks the names at both ends of the listing
func (p *InventoryPage) AssertFirstAndLast(first, last string) error {
	if err := p.expectText(LocFirstItemName, first); err != nil {
		return err
	}
	return p.expectText(LocLastItemName, last)
}

// AssertSortedBy checks the listing ends match the catalog sorted by order
func (p *InventoryPage) AssertSortedBy(order catalog.SortOrder) error {
	if _, err := catalog.ParseSortOrder(string(order)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSort, order)
	}
	sorted := catalog.Sort(catalog.Items(), order)
	return p.AssertFirstAndLast(sorted[0].Name, sorted[len(sorted)-1].Name)
}

// AssertDefaultSort checks the control shows name A to Z and the listing follows it
func (p *InventoryPage) AssertDefaultSort() error {
	value := string(catalog.DefaultSortOrder)
	if err := p.wrap("expect sort "+value, p.expect.Locator(p.loc.Get(LocSortSelect)).ToHaveValue(value)); err != nil {
		return err
	}
	return p.AssertSortedBy(catalog.DefaultSortOrder)
}

// AssertItemCount checks how many products are listed
func (p *InventoryPage) AssertItemCount(n int) error {
	return p.expectCount(LocInventoryItem, n)
}

// AssertCartBadge checks the badge count. Zero means the badge is absent.
func (p *InventoryPage) AssertCartBadge(count int) error {
	if count == 0 {
		return p.expectCount(LocCartBadge, 0)
	}
	return p.expectText(LocCartBadge, strconv.Itoa(count))
}

// OpenCart follows the cart link
func (p *InventoryPage) OpenCart() error {
	if err := p.click(LocCartLink); err != nil {
		return err
	}
	return p.expectURL(p.site.Cart())
}
