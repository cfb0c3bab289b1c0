package locator

import "github.com/playwright-community/playwright-go"

// ARIA roles used by the storefront's page objects
const (
	RoleButton  playwright.AriaRole = "button"
	RoleLink    playwright.AriaRole = "link"
	RoleTextbox playwright.AriaRole = "textbox"
	RoleHeading playwright.AriaRole = "heading"
)
