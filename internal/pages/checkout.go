package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/saucesuite/internal/locator"
)

// Checkout element names
const (
	LocFirstName      = "firstName"
	LocLastName       = "lastName"
	LocPostalCode     = "postalCode"
	LocContinue       = "continue"
	LocFinish         = "finish"
	LocCancel         = "cancel"
	LocSubtotal       = "subtotal"
	LocTax            = "tax"
	LocTotal          = "total"
	LocCompleteHeader = "completeHeader"
	LocPaymentInfo    = "paymentInfo"
	LocShippingInfo   = "shippingInfo"
	LocPriceTotal     = "priceTotal"
)

// Overview literals
const (
	PaymentInfo     = "SauceCard #31337"
	ShippingInfo    = "Free Pony Express Delivery!"
	PriceTotalLabel = "Price Total"
	CompleteHeading = "Thank you for your order!"
)

// CheckoutLocators is the default registry for the two checkout steps and the confirmation
func CheckoutLocators() *locator.Registry {
	return locator.NewRegistry("checkout", map[string]locator.Strategy{
		LocFirstName:      locator.ByRole(locator.RoleTextbox, "First Name"),
		LocLastName:       locator.ByRole(locator.RoleTextbox, "Last Name"),
		LocPostalCode:     locator.ByRole(locator.RoleTextbox, "Zip/Postal Code"),
		LocContinue:       locator.ByRole(locator.RoleButton, "Continue"),
		LocFinish:         locator.ByRole(locator.RoleButton, "Finish"),
		LocCancel:         locator.ByRole(locator.RoleButton, "Cancel"),
		LocSubtotal:       locator.ByTestHook("subtotal-label"),
		LocTax:            locator.ByCSS(".summary_tax_label"),
		LocTotal:          locator.ByCSS(".summary_total_label"),
		LocError:          locator.ByTestHook("error"),
		LocCompleteHeader: locator.ByRole(locator.RoleHeading, CompleteHeading),
		LocPaymentInfo:    locator.ByTestHook("payment-info-value"),
		LocShippingInfo:   locator.ByTestHook("shipping-info-value"),
		LocPriceTotal:     locator.ByTestHook("total-info-label"),
	})
}

// CheckoutPage drives checkout step one, the overview and the confirmation
type CheckoutPage struct {
	base
}

// NewCheckoutPage builds a checkout page object over page
func NewCheckoutPage(page playwright.Page, env Env) (*CheckoutPage, error) {
	b, err := newBase("checkout", page, env.Locators.Checkout, CheckoutLocators(), []string{
		LocFirstName, LocLastName, LocPostalCode, LocContinue, LocFinish, LocCancel,
		LocSubtotal, LocTax, LocTotal, LocError, LocCompleteHeader,
		LocPaymentInfo, LocShippingInfo, LocPriceTotal,
	}, env)
	if err != nil {
		return nil, err
	}
	return &CheckoutPage{base: b}, nil
}

// FillCustomerInfo fills the three form fields and submits. Blank values are
// submitted as they are so the site's validation can be exercised.
func (p *CheckoutPage) FillCustomerInfo(first, last, zip string) error {
	if err := p.fill(LocFirstName, first); err != nil {
		return err
	}
	if err := p.fill(LocLastName, last); err != nil {
		return err
	}
	if err := p.fill(LocPostalCode, zip); err != nil {
		return err
	}
	return p.click(LocContinue)
}

// CompleteOrder clicks Finish and checks the confirmation URL and heading
func (p *CheckoutPage) CompleteOrder() error {
	if err := p.click(LocFinish); err != nil {
		return err
	}
	if err := p.expectURL(p.site.CheckoutComplete()); err != nil {
		return err
	}
	return p.expectVisible(LocCompleteHeader)
}

// CancelCheckout clicks Cancel on the overview and checks the return to the inventory
func (p *CheckoutPage) CancelCheckout() error {
	if err := p.click(LocCancel); err != nil {
		return err
	}
	return p.expectURL(p.site.Inventory())
}

// CancelForm clicks Cancel on the customer form and checks the return to the cart
func (p *CheckoutPage) CancelForm() error {
	if err := p.click(LocCancel); err != nil {
		return err
	}
	return p.expectURL(p.site.Cart())
}

// AssertFinalTotals checks that each overview label contains its expected text
func (p *CheckoutPage) AssertFinalTotals(subtotal, tax, total string) error {
	if err := p.expectContains(LocSubtotal, subtotal); err != nil {
		return err
	}
	if err := p.expectContains(LocTax, tax); err != nil {
		return err
	}
	return p.expectContains(LocTotal, total)
}

// AssertFormError checks the exact form error and that the form did not advance
func (p *CheckoutPage) AssertFormError(msg string) error {
	if err := p.expectText(LocError, msg); err != nil {
		return err
	}
	return p.expectURL(p.site.CheckoutStepOne())
}

// AssertOverviewInfo checks the overview URL and its payment, shipping and total labels
func (p *CheckoutPage) AssertOverviewInfo() error {
	if err := p.expectURL(p.site.CheckoutStepTwo()); err != nil {
		return err
	}
	if err := p.expectText(LocPaymentInfo, PaymentInfo); err != nil {
		return err
	}
	if err := p.expectText(LocShippingInfo, ShippingInfo); err != nil {
		return err
	}
	return p.expectText(LocPriceTotal, PriceTotalLabel)
}
