package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// Storefront holds the services the replica pages are served from
type Storefront struct {
	Accounts []models.User
	Auth     services.AuthService
	Sessions services.SessionStore
	Orders   services.OrderService
	Checkout services.CheckoutService
	Log      logrus.FieldLogger
}

// NewStorefront wires the default services over an order repository
func NewStorefront(orderRepo services.OrderRepository, log logrus.FieldLogger) *Storefront {
	accounts := models.Accounts()
	sessions := services.NewMemorySessionStore()
	orders := services.NewOrderService(orderRepo)
	return &Storefront{
		Accounts: accounts,
		Auth:     services.NewUserDirectory(accounts, models.SharedPassword),
		Sessions: sessions,
		Orders:   orders,
		Checkout: services.NewCheckoutService(sessions, orders, log),
		Log:      log,
	}
}

// Routes builds the storefront's handler tree
func (s *Storefront) Routes() (http.Handler, error) {
	log := logging.Category(s.Log, "server")

	renderer, err := NewRenderer(log)
	if err != nil {
		return nil, err
	}

	private := func(h http.Handler) http.Handler {
		return RequireSession(s.Sessions, log, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/", NewLoginHandler(renderer, s.Auth, s.Sessions, s.Accounts, log))
	mux.Handle("/logout", NewLogoutHandler(s.Sessions, log))
	mux.Handle("/inventory.html", private(NewInventoryHandler(renderer, log)))
	mux.Handle("/cart.html", private(NewCartHandler(renderer, log)))
	mux.Handle("/cart/add", private(NewCartAPIHandler(s.Sessions, CartAdd, log)))
	mux.Handle("/cart/remove", private(NewCartAPIHandler(s.Sessions, CartRemove, log)))
	mux.Handle("/reset", private(NewCartAPIHandler(s.Sessions, CartReset, log)))
	mux.Handle("/checkout-step-one.html", private(NewCheckoutInfoHandler(renderer, s.Checkout, log)))
	mux.Handle("/checkout-step-two.html", private(NewCheckoutOverviewHandler(renderer, s.Checkout, log)))
	mux.Handle("/checkout-complete.html", private(NewCheckoutCompleteHandler(renderer, s.Orders, log)))
	mux.Handle("/api/product", ProductAPIHandler{})
	mux.Handle("/api/login", NewLoginAPIHandler(s.Auth, s.Sessions, log))

	return mux, nil
}
