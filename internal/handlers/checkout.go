package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// orderCookie carries the finished order's reference to the confirmation
const orderCookie = "order-reference"

// Overview labels
const (
	PaymentInfo  = "SauceCard #31337"
	ShippingInfo = "Free Pony Express Delivery!"
)

// CheckoutInfoData represents the data passed to the customer form template
type CheckoutInfoData struct {
	PageData
	Customer models.CustomerInfo
	Error    string
}

// CheckoutInfoHandler serves checkout step one, the customer form
type CheckoutInfoHandler struct {
	renderer *Renderer
	checkout services.CheckoutService
	log      logrus.FieldLogger
}

// NewCheckoutInfoHandler creates a new checkout step one handler
func NewCheckoutInfoHandler(renderer *Renderer, checkout services.CheckoutService, log logrus.FieldLogger) *CheckoutInfoHandler {
	return &CheckoutInfoHandler{renderer: renderer, checkout: checkout, log: log}
}

// ServeHTTP renders the form on GET. POST cancels back to the cart, re-renders
// the form with the first validation error, or moves on to the overview.
func (h *CheckoutInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	data := CheckoutInfoData{PageData: PageData{CartCount: len(sess.Cart)}}

	switch r.Method {
	case http.MethodGet:
		if sess.Customer != nil {
			data.Customer = *sess.Customer
		}
		h.renderer.Render(w, "checkout-step-one.html", data)
	case http.MethodPost:
		if r.PostFormValue("action") == "cancel" {
			http.Redirect(w, r, "/cart.html", http.StatusSeeOther)
			return
		}
		data.Customer = models.CustomerInfo{
			FirstName:  r.PostFormValue("firstName"),
			LastName:   r.PostFormValue("lastName"),
			PostalCode: r.PostFormValue("postalCode"),
		}
		err := h.checkout.SubmitCustomer(sess.Token, data.Customer)
		var fieldErr *models.FieldError
		switch {
		case errors.As(err, &fieldErr):
			h.log.WithField("field", fieldErr.Field).Info("checkout form rejected")
			data.Error = fieldErr.Message
			h.renderer.Render(w, "checkout-step-one.html", data)
		case err != nil:
			h.log.WithError(err).Error("error saving checkout information")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		default:
			http.Redirect(w, r, "/checkout-step-two.html", http.StatusSeeOther)
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CheckoutOverviewData represents the data passed to the overview template
type CheckoutOverviewData struct {
	PageData
	Items        []catalog.Item
	Totals       catalog.Totals
	PaymentInfo  string
	ShippingInfo string
}

// CheckoutOverviewHandler serves checkout step two, the order summary
type CheckoutOverviewHandler struct {
	renderer *Renderer
	checkout services.CheckoutService
	log      logrus.FieldLogger
}

// NewCheckoutOverviewHandler creates a new checkout step two handler
func NewCheckoutOverviewHandler(renderer *Renderer, checkout services.CheckoutService, log logrus.FieldLogger) *CheckoutOverviewHandler {
	return &CheckoutOverviewHandler{renderer: renderer, checkout: checkout, log: log}
}

// ServeHTTP renders the summary on GET. POST cancels to the inventory or
// finishes the order and shows the confirmation.
func (h *CheckoutOverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	switch r.Method {
	case http.MethodGet:
		ov, err := h.checkout.Overview(sess.Token)
		if err != nil {
			h.log.WithError(err).Error("error building overview")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.renderer.Render(w, "checkout-step-two.html", CheckoutOverviewData{
			PageData:     PageData{CartCount: len(ov.Items)},
			Items:        ov.Items,
			Totals:       ov.Totals,
			PaymentInfo:  PaymentInfo,
			ShippingInfo: ShippingInfo,
		})
	case http.MethodPost:
		if r.PostFormValue("action") == "cancel" {
			http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
			return
		}
		order, err := h.checkout.Finish(sess.Token)
		switch {
		case errors.Is(err, models.ErrEmptyOrder), errors.Is(err, services.ErrNoCustomer):
			// Nothing to place, the storefront still confirms.
			h.log.WithField("username", sess.Username).WithError(err).Info("finished without an order")
			http.Redirect(w, r, "/checkout-complete.html", http.StatusSeeOther)
		case err != nil:
			h.log.WithError(err).Error("error finishing checkout")
			http.Error(w, "Failed to place order", http.StatusInternalServerError)
		default:
			http.SetCookie(w, &http.Cookie{Name: orderCookie, Value: order.Reference, Path: "/", HttpOnly: true})
			http.Redirect(w, r, "/checkout-complete.html", http.StatusSeeOther)
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CompleteData represents the data passed to the confirmation template
type CompleteData struct {
	PageData
	Reference string
}

// CheckoutCompleteHandler serves the order confirmation
type CheckoutCompleteHandler struct {
	renderer *Renderer
	orders   services.OrderService
	log      logrus.FieldLogger
}

// NewCheckoutCompleteHandler creates a new confirmation handler
func NewCheckoutCompleteHandler(renderer *Renderer, orders services.OrderService, log logrus.FieldLogger) *CheckoutCompleteHandler {
	return &CheckoutCompleteHandler{renderer: renderer, orders: orders, log: log}
}

// ServeHTTP handles GET /checkout-complete.html. The reference of the order
// just finished is shown once, and only when that order is completed.
func (h *CheckoutCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := CompleteData{PageData: PageData{CartCount: len(sessionFrom(r).Cart)}}
	if c, err := r.Cookie(orderCookie); err == nil && c.Value != "" {
		ref := c.Value
		clearCookie(w, orderCookie)
		order, err := h.orders.GetOrderByReference(ref)
		if err != nil {
			h.log.WithError(err).WithField("reference", ref).Warn("confirmation for unknown order")
		} else if order.IsCompleted() {
			data.Reference = order.Reference
		}
	}

	h.renderer.Render(w, "checkout-complete.html", data)
}
