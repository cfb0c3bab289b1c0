package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/models"
)

// ErrNoCustomer is returned when the overview is finished before the customer form
var ErrNoCustomer = errors.New("checkout information missing")

// CheckoutService turns a session cart into an order
type CheckoutService interface {
	SubmitCustomer(token string, customer models.CustomerInfo) error
	Overview(token string) (*Overview, error)
	Finish(token string) (*models.Order, error)
}

// Overview is what checkout step two shows
type Overview struct {
	Customer models.CustomerInfo
	Items    []catalog.Item
	Totals   catalog.Totals
}

// CheckoutServiceImpl implements CheckoutService
type CheckoutServiceImpl struct {
	sessions     SessionStore
	orderService OrderService
	log          *logrus.Entry
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(sessions SessionStore, orderService OrderService, log logrus.FieldLogger) CheckoutService {
	return &CheckoutServiceImpl{
		sessions:     sessions,
		orderService: orderService,
		log:          logging.Category(log, "checkout"),
	}
}

// SubmitCustomer validates the step one form and stores it on the session
func (s *CheckoutServiceImpl) SubmitCustomer(token string, customer models.CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	return s.sessions.SetCustomer(token, customer)
}

// Overview computes the step two summary from the session cart
func (s *CheckoutServiceImpl) Overview(token string) (*Overview, error) {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return nil, err
	}
	items, err := sess.CartItems()
	if err != nil {
		return nil, err
	}
	ov := &Overview{Items: items, Totals: catalog.ComputeTotals(items)}
	if sess.Customer != nil {
		ov.Customer = *sess.Customer
	}
	return ov, nil
}

// Finish places and completes the order, then empties the cart
func (s *CheckoutServiceImpl) Finish(token string) (*models.Order, error) {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return nil, err
	}
	if sess.Customer == nil {
		return nil, ErrNoCustomer
	}
	items, err := sess.CartItems()
	if err != nil {
		return nil, err
	}

	order, err := s.orderService.CreateOrder(*sess.Customer, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.log.WithField("reference", order.Reference).WithField("user", sess.Username).Info("order created")

	order, err = s.orderService.CompleteOrder(order.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}

	if err := s.sessions.ResetCart(token); err != nil {
		return nil, err
	}
	s.log.WithField("reference", order.Reference).WithField("total", order.Totals.Total.String()).Info("order completed")
	return order, nil
}
