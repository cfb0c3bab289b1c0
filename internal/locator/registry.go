package locator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ErrUnknownLocator is returned when a page object needs a name its registry lacks
var ErrUnknownLocator = errors.New("unknown locator")

// Template builds a strategy from a runtime argument, such as an item name
type Template func(arg string) Strategy

// Registry binds semantic element names to strategies for one logical page
type Registry struct {
	page      string
	entries   map[string]Strategy
	templates map[string]Template
}

// NewRegistry creates a registry for the named page
func NewRegistry(page string, entries map[string]Strategy) *Registry {
	r := &Registry{
		page:      page,
		entries:   make(map[string]Strategy, len(entries)),
		templates: map[string]Template{},
	}
	for name, s := range entries {
		r.entries[name] = s
	}
	return r
}

// WithTemplates adds parameterised entries and returns the registry
func (r *Registry) WithTemplates(templates map[string]Template) *Registry {
	for name, tpl := range templates {
		r.templates[name] = tpl
	}
	return r
}

// Page returns the logical page name
func (r *Registry) Page() string {
	return r.page
}

// Names returns every fixed and template name, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries)+len(r.templates))
	for n := range r.entries {
		names = append(names, n)
	}
	for n := range r.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Strategy looks up a fixed entry
func (r *Registry) Strategy(name string) (Strategy, bool) {
	s, ok := r.entries[name]
	return s, ok
}

// Require checks that every name is registered, as a fixed entry or a template.
// Page objects call it from their constructors.
func (r *Registry) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		_, fixed := r.entries[n]
		_, tpl := r.templates[n]
		if !fixed && !tpl {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w on %s page: %s", ErrUnknownLocator, r.page, strings.Join(missing, ", "))
	}
	return nil
}

// Bind attaches the registry to a page handle. Nothing is resolved until Get or Format.
func (r *Registry) Bind(page playwright.Page) *Bound {
	return &Bound{registry: r, page: page}
}

// Bound is a registry attached to one page handle
type Bound struct {
	registry *Registry
	page     playwright.Page
}

// Page returns the bound page handle
func (b *Bound) Page() playwright.Page {
	return b.page
}

// Get resolves a fixed entry. Names are checked by Require at construction, so a
// miss here is a programming error and panics.
func (b *Bound) Get(name string) playwright.Locator {
	s, ok := b.registry.entries[name]
	if !ok {
		panic(fmt.Sprintf("locator %q not registered on %s page", name, b.registry.page))
	}
	return s.Resolve(b.page)
}

// Within resolves a fixed entry scoped to the subtree of parent
func (b *Bound) Within(name string, parent Strategy) playwright.Locator {
	s, ok := b.registry.entries[name]
	if !ok {
		panic(fmt.Sprintf("locator %q not registered on %s page", name, b.registry.page))
	}
	return s.Within(parent).Resolve(b.page)
}

// Format resolves a template entry with arg
func (b *Bound) Format(name, arg string) playwright.Locator {
	return b.Template(name, arg).Resolve(b.page)
}

// Template returns the strategy a template entry builds for arg
func (b *Bound) Template(name, arg string) Strategy {
	tpl, ok := b.registry.templates[name]
	if !ok {
		panic(fmt.Sprintf("locator template %q not registered on %s page", name, b.registry.page))
	}
	return tpl(arg)
}

// Describe returns a readable form of the named fixed strategy
func (b *Bound) Describe(name string) string {
	if s, ok := b.registry.entries[name]; ok {
		return s.String()
	}
	return name
}
