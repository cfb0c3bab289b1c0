// Package locator maps semantic element names to Playwright selection
// strategies. Strategies are plain values; they become live locators only when
// resolved against a page, which Playwright itself evaluates lazily.
package locator

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

type kind int

const (
	kindCSS kind = iota
	kindRole
	kindText
)

type position int

const (
	positionAny position = iota
	positionFirst
	positionLast
	positionNth
)

// Strategy describes how to find one element
type Strategy struct {
	kind     kind
	selector string
	role     playwright.AriaRole
	name     string
	exact    bool

	pos   position
	index int

	hasText string
	has     *Strategy
	parent  *Strategy
}

// ByCSS selects by CSS or Playwright selector syntax
func ByCSS(selector string) Strategy {
	return Strategy{kind: kindCSS, selector: selector}
}

// ByTestHook selects by the storefront's data-test attribute
func ByTestHook(hook string) Strategy {
	return ByCSS(fmt.Sprintf(`[data-test="%s"]`, hook))
}

// ByRole selects by ARIA role and accessible name
func ByRole(role playwright.AriaRole, name string) Strategy {
	return Strategy{kind: kindRole, role: role, name: name}
}

// ByText selects the smallest element containing text
func ByText(text string) Strategy {
	return Strategy{kind: kindText, name: text}
}

// Exact requires the accessible name or text to match in full
func (s Strategy) Exact() Strategy {
	s.exact = true
	return s
}

// First narrows the match to the first element
func (s Strategy) First() Strategy {
	s.pos = positionFirst
	return s
}

// Last narrows the match to the last element
func (s Strategy) Last() Strategy {
	s.pos = positionLast
	return s
}

// Nth narrows the match to the zero-based i-th element
func (s Strategy) Nth(i int) Strategy {
	s.pos = positionNth
	s.index = i
	return s
}

// WithText keeps only matches containing text
func (s Strategy) WithText(text string) Strategy {
	s.hasText = text
	return s
}

// Has keeps only matches that contain an element found by inner
func (s Strategy) Has(inner Strategy) Strategy {
	s.has = &inner
	return s
}

// Within scopes the strategy to the subtree of parent
func (s Strategy) Within(parent Strategy) Strategy {
	s.parent = &parent
	return s
}

// String describes the strategy for failure messages
func (s Strategy) String() string {
	var b strings.Builder
	if s.parent != nil {
		b.WriteString(s.parent.String())
		b.WriteString(" >> ")
	}
	switch s.kind {
	case kindRole:
		fmt.Fprintf(&b, "role=%s[name=%q]", s.role, s.name)
	case kindText:
		fmt.Fprintf(&b, "text=%q", s.name)
	default:
		b.WriteString(s.selector)
	}
	if s.hasText != "" {
		fmt.Fprintf(&b, "[has-text=%q]", s.hasText)
	}
	if s.has != nil {
		fmt.Fprintf(&b, "[has=%s]", s.has.String())
	}
	switch s.pos {
	case positionFirst:
		b.WriteString(".first")
	case positionLast:
		b.WriteString(".last")
	case positionNth:
		fmt.Fprintf(&b, ".nth(%d)", s.index)
	}
	return b.String()
}

// Resolve turns the strategy into a live locator on page
func (s Strategy) Resolve(page playwright.Page) playwright.Locator {
	var loc playwright.Locator
	if s.parent != nil {
		loc = s.resolveIn(s.parent.Resolve(page))
	} else {
		loc = s.resolveOnPage(page)
	}

	if s.hasText != "" || s.has != nil {
		opts := playwright.LocatorFilterOptions{}
		if s.hasText != "" {
			opts.HasText = s.hasText
		}
		if s.has != nil {
			opts.Has = s.has.Resolve(page)
		}
		loc = loc.Filter(opts)
	}

	switch s.pos {
	case positionFirst:
		loc = loc.First()
	case positionLast:
		loc = loc.Last()
	case positionNth:
		loc = loc.Nth(s.index)
	}
	return loc
}

func (s Strategy) resolveOnPage(page playwright.Page) playwright.Locator {
	switch s.kind {
	case kindRole:
		return page.GetByRole(s.role, playwright.PageGetByRoleOptions{
			Name:  s.name,
			Exact: playwright.Bool(s.exact),
		})
	case kindText:
		return page.GetByText(s.name, playwright.PageGetByTextOptions{
			Exact: playwright.Bool(s.exact),
		})
	default:
		return page.Locator(s.selector)
	}
}

func (s Strategy) resolveIn(parent playwright.Locator) playwright.Locator {
	switch s.kind {
	case kindRole:
		return parent.GetByRole(s.role, playwright.LocatorGetByRoleOptions{
			Name:  s.name,
			Exact: playwright.Bool(s.exact),
		})
	case kindText:
		return parent.GetByText(s.name, playwright.LocatorGetByTextOptions{
			Exact: playwright.Bool(s.exact),
		})
	default:
		return parent.Locator(s.selector)
	}
}
