//go:build e2e

package e2e

import (
	"testing"

	"github.com/themizzi/saucesuite/internal/scenario"
	"github.com/themizzi/saucesuite/internal/suite"
)

// TestCheckout tests the checkout flow
// Feature: Checkout
//
//	As a customer
//	I want to pay for the items in my cart
//	So that I can receive them
func TestCheckout(t *testing.T) {
	t.Run("TC_CHECKOUT_001", func(t *testing.T) {
		// Scenario: Successful purchase of two products
		//   Given I am on the checkout form with the backpack and the bolt t-shirt
		//   When I fill in my details
		//   Then the overview should show the item total, tax and total
		//   And finishing should show "Thank you for your order!"
		f := s.Fixtures(t)
		f.CheckoutStepOnePage()
		checkout := f.CheckoutPage()
		c := scenario.DefaultCustomer

		f.Step("1. Fill customer info and proceed to Overview", func() error {
			if err := checkout.FillCustomerInfo(c.FirstName, c.LastName, c.PostalCode); err != nil {
				return err
			}
			return checkout.AssertURL(s.Env.Site.CheckoutStepTwo())
		})
		f.Step("2. Verify order information", checkout.AssertOverviewInfo)
		f.Step("3. Verify final totals and complete order", func() error {
			if err := checkout.AssertFinalTotals(scenario.Subtotal, scenario.Tax, scenario.Total); err != nil {
				return err
			}
			return checkout.CompleteOrder()
		})
	})

	t.Run("TC_CHECKOUT_CANCEL_001", func(t *testing.T) {
		// Scenario: Cancel from the overview
		//   Given I am on the checkout overview
		//   When I cancel
		//   Then I should be back on the inventory
		//   And my cart should still hold both items
		f := s.Fixtures(t)
		f.CheckoutStepOnePage()
		checkout := f.CheckoutPage()
		inventory := f.InventoryPage()
		c := scenario.DefaultCustomer

		f.Step("1. Fill customer info", func() error {
			return checkout.FillCustomerInfo(c.FirstName, c.LastName, c.PostalCode)
		})
		f.Step("2. Cancel the checkout", checkout.CancelCheckout)
		f.Step("3. Verify the cart is kept", func() error {
			return inventory.AssertCartBadge(len(scenario.CartItems()))
		})
	})
}

// TestCheckoutFormErrors tests the customer form validation
// Feature: Checkout form validation
//
//	As a customer
//	I want to be told which field is missing
//	So that I can correct it
func TestCheckoutFormErrors(t *testing.T) {
	suite.Run(t, suite.FormErrorCases(scenario.CheckoutFormErrors()), func(t *testing.T, fe scenario.FormError) {
		// Scenario: Submit with one field blank
		//   Given I am on the checkout form
		//   When I continue with one field left blank
		//   Then I should see that field's error
		//   And I should stay on the checkout form
		f := s.Fixtures(t)
		f.CheckoutStepOnePage()
		checkout := f.CheckoutPage()
		c := fe.Customer

		f.Step("1. Submit the form with a blank field", func() error {
			return checkout.FillCustomerInfo(c.FirstName, c.LastName, c.PostalCode)
		})
		f.Step("2. Verify the validation error message", func() error {
			return checkout.AssertFormError(fe.Message)
		})
	})
}
