package pages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/themizzi/saucesuite/internal/catalog"
)

// ItemHooks are the data-test values of an item's add and remove buttons
type ItemHooks struct {
	Add    string
	Remove string
}

// CartHooks maps item display names to their button hooks
type CartHooks map[string]ItemHooks

// DefaultCartHooks builds the table from the catalog
func DefaultCartHooks() CartHooks {
	hooks := CartHooks{}
	for _, item := range catalog.Items() {
		hooks[item.Name] = ItemHooks{Add: item.AddHook, Remove: item.RemoveHook}
	}
	return hooks
}

// HookSlug applies the storefront's naming convention: lowercase with spaces as hyphens
func HookSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Lookup returns the hooks for name
func (h CartHooks) Lookup(name string) (ItemHooks, error) {
	hooks, ok := h[name]
	if !ok {
		return ItemHooks{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownItem, name, strings.Join(h.Names(), ", "))
	}
	return hooks, nil
}

// Names returns the known display names, sorted
func (h CartHooks) Names() []string {
	names := make([]string, 0, len(h))
	for n := range h {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
