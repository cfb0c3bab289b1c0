package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/errgroup"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/locator"
)

// Login page element names
const (
	LocUsername       = "username"
	LocPassword       = "password"
	LocLoginButton    = "loginButton"
	LocMenuButton     = "menuButton"
	LocLogoutLink     = "logoutLink"
	LocResetLink      = "resetLink"
	LocCloseMenu      = "closeMenu"
	LocProductsMarker = "productsMarker"
	LocError          = "error"
)

// AccessDeniedMessage is shown on the login page after a signed-out visit to path
func AccessDeniedMessage(path string) string {
	return fmt.Sprintf("Epic sadface: You can only access '/%s' when you are logged in.", path)
}

// LoginLocators is the default login page registry. The menu entries live here
// because logging out and resetting state start from any signed-in page.
func LoginLocators() *locator.Registry {
	return locator.NewRegistry("login", map[string]locator.Strategy{
		LocUsername:       locator.ByRole(locator.RoleTextbox, "Username"),
		LocPassword:       locator.ByRole(locator.RoleTextbox, "Password"),
		LocLoginButton:    locator.ByRole(locator.RoleButton, "Login"),
		LocMenuButton:     locator.ByRole(locator.RoleButton, "Open Menu"),
		LocLogoutLink:     locator.ByRole(locator.RoleLink, "Logout"),
		LocResetLink:      locator.ByCSS("#reset_sidebar_link"),
		LocCloseMenu:      locator.ByCSS(".bm-cross-button"),
		LocProductsMarker: locator.ByText("Products").Exact(),
		LocError:          locator.ByTestHook("error"),
	})
}

// LoginPage drives authentication and the side menu
type LoginPage struct {
	base
}

// NewLoginPage builds a login page object over page
func NewLoginPage(page playwright.Page, env Env) (*LoginPage, error) {
	b, err := newBase("login", page, env.Locators.Login, LoginLocators(), []string{
		LocUsername, LocPassword, LocLoginButton, LocMenuButton, LocLogoutLink,
		LocResetLink, LocCloseMenu, LocProductsMarker, LocError,
	}, env)
	if err != nil {
		return nil, err
	}
	return &LoginPage{base: b}, nil
}

// Goto opens the login page
func (p *LoginPage) Goto() error {
	return p.goTo(p.site.Login())
}

// Login opens the login page, fills both fields and submits. The outcome is not checked.
func (p *LoginPage) Login(username, password string) error {
	p.log.WithField("username", username).Info("login")
	if err := p.Goto(); err != nil {
		return err
	}
	if err := p.fill(LocUsername, username); err != nil {
		return err
	}
	if err := p.fill(LocPassword, password); err != nil {
		return err
	}
	return p.click(LocLoginButton)
}

// LoginAndWaitForInventory logs in while concurrently waiting for the inventory
// URL, so the navigation triggered by submit cannot be missed. The wait is cut
// short by ctx's deadline, and a done ctx fails before the page is touched.
func (p *LoginPage) LoginAndWaitForInventory(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return p.wrap("login as "+username, err)
	}
	wait := p.timeouts.LoginWait
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < wait {
			wait = left
		}
	}

	var g errgroup.Group
	g.Go(func() error {
		return p.wrap("wait for inventory", p.page.WaitForURL(p.site.Inventory(), playwright.PageWaitForURLOptions{
			Timeout: playwright.Float(config.Milliseconds(wait)),
		}))
	})
	g.Go(func() error {
		return p.Login(username, password)
	})
	return g.Wait()
}

// Logout opens the side menu and clicks Logout
func (p *LoginPage) Logout() error {
	if err := p.click(LocMenuButton); err != nil {
		return err
	}
	return p.click(LocLogoutLink)
}

// ExpectLoggedIn checks the inventory URL and the Products title
func (p *LoginPage) ExpectLoggedIn() error {
	if err := p.expectURL(p.site.Inventory()); err != nil {
		return err
	}
	return p.expectVisible(LocProductsMarker)
}

// ExpectLoggedOut checks the login URL and the username field
func (p *LoginPage) ExpectLoggedOut() error {
	if err := p.expectURL(p.site.Login()); err != nil {
		return err
	}
	return p.expectVisible(LocUsername)
}

// ResetAppState clears the cart through the side menu and closes the menu again
func (p *LoginPage) ResetAppState() error {
	err := p.expect.Locator(p.loc.Get(LocProductsMarker)).ToBeVisible(playwright.LocatorAssertionsToBeVisibleOptions{
		Timeout: playwright.Float(config.Milliseconds(p.timeouts.Marker)),
	})
	if err := p.wrap("wait for Products title", err); err != nil {
		return err
	}
	if err := p.waitVisible(LocMenuButton); err != nil {
		return err
	}
	if err := p.click(LocMenuButton); err != nil {
		return err
	}
	if err := p.waitVisible(LocResetLink); err != nil {
		return err
	}
	if err := p.click(LocResetLink); err != nil {
		return err
	}
	return p.click(LocCloseMenu, playwright.LocatorClickOptions{
		Timeout: playwright.Float(config.Milliseconds(p.timeouts.MenuClose)),
	})
}

// AssertErrorText checks that the error banner is visible with exactly msg
func (p *LoginPage) AssertErrorText(msg string) error {
	if err := p.expectVisible(LocError); err != nil {
		return err
	}
	return p.expectText(LocError, msg)
}

// AssertAccessDenied visits path signed out and checks the redirect and its message
func (p *LoginPage) AssertAccessDenied(path string) error {
	if err := p.goTo(p.site.URL(path)); err != nil {
		return err
	}
	if err := p.expectURL(p.site.Login()); err != nil {
		return err
	}
	return p.AssertErrorText(AccessDeniedMessage(path))
}
