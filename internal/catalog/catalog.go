// Package catalog holds the storefront's fixed product list: names, prices,
// descriptions and the data-test hooks of each item's cart controls.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownItem is returned when a display name is not in the catalog
var ErrUnknownItem = errors.New("unknown catalog item")

// Item is one product on the inventory page
type Item struct {
	ID          int
	Name        string
	Description string
	Price       Cents
	// AddHook and RemoveHook are the data-test values of the item's cart buttons.
	AddHook    string
	RemoveHook string
}

// Display names used across the suite
const (
	Backpack     = "Sauce Labs Backpack"
	BikeLight    = "Sauce Labs Bike Light"
	BoltTShirt   = "Sauce Labs Bolt T-Shirt"
	FleeceJacket = "Sauce Labs Fleece Jacket"
	Onesie       = "Sauce Labs Onesie"
	RedTShirt    = "Test.allTheThings() T-Shirt (Red)"
)

var items = []Item{
	{
		ID:          4,
		Name:        Backpack,
		Description: "carry.allTheThings() with the sleek, streamlined Sly Pack that melds uncompromising style with unequaled laptop and tablet protection.",
		Price:       2999,
		AddHook:     "add-to-cart-sauce-labs-backpack",
		RemoveHook:  "remove-sauce-labs-backpack",
	},
	{
		ID:          0,
		Name:        BikeLight,
		Description: "A red light isn't the desired state in testing but it sure helps when riding your bike at night. Water-resistant with 3 lighting modes, 1 AAA battery included.",
		Price:       999,
		AddHook:     "add-to-cart-sauce-labs-bike-light",
		RemoveHook:  "remove-sauce-labs-bike-light",
	},
	{
		ID:          1,
		Name:        BoltTShirt,
		Description: "Get your testing superhero on with the Sauce Labs bolt T-shirt. From American Apparel, 100% ringspun combed cotton, heather gray with red bolt.",
		Price:       1599,
		AddHook:     "add-to-cart-sauce-labs-bolt-t-shirt",
		RemoveHook:  "remove-sauce-labs-bolt-t-shirt",
	},
	{
		ID:          5,
		Name:        FleeceJacket,
		Description: "It's not every day that you come across a midweight quarter-zip fleece jacket capable of handling everything from a relaxing day outdoors to a busy day at the office.",
		Price:       4999,
		AddHook:     "add-to-cart-sauce-labs-fleece-jacket",
		RemoveHook:  "remove-sauce-labs-fleece-jacket",
	},
	{
		ID:          2,
		Name:        Onesie,
		Description: "Rib snap infant onesie for the junior automation engineer in development. Reinforced 3-snap bottom closure, two-needle hemmed sleeved and bottom won't unravel.",
		Price:       799,
		AddHook:     "add-to-cart-sauce-labs-onesie",
		RemoveHook:  "remove-sauce-labs-onesie",
	},
	{
		ID:          3,
		Name:        RedTShirt,
		Description: "This classic Sauce Labs t-shirt is perfect to wear when cozying up to your keyboard to automate a few tests. Super-soft and comfy ringspun combed cotton.",
		Price:       1599,
		AddHook:     "add-to-cart-test.allthethings()-t-shirt-(red)",
		RemoveHook:  "remove-test.allthethings()-t-shirt-(red)",
	},
}

// Items returns a copy of the catalog in name order
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the item with the given display name
func Find(name string) (Item, error) {
	for _, it := range items {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// FindByID returns the item with the given catalog id
func FindByID(id int) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: id %d", ErrUnknownItem, id)
}

// FindByAddHook returns the item whose add-to-cart button carries hook
func FindByAddHook(hook string) (Item, error) {
	for _, it := range items {
		if it.AddHook == hook {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: hook %q", ErrUnknownItem, hook)
}
