package services

import (
	"errors"
	"fmt"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
)

// ErrOrderNotFound is returned by repositories for an unknown reference
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByReference(reference string) (*models.Order, error)
	UpdateOrderStatus(reference string, status models.OrderStatus) error
}

// OrderService handles order business logic
type OrderService interface {
	CreateOrder(customer models.CustomerInfo, items []catalog.Item) (*models.Order, error)
	GetOrderByReference(reference string) (*models.Order, error)
	CompleteOrder(reference string) (*models.Order, error)
}

// OrderServiceImpl implements OrderService
type OrderServiceImpl struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
	}
}

// CreateOrder creates a pending order for the customer's cart lines
func (s *OrderServiceImpl) CreateOrder(customer models.CustomerInfo, items []catalog.Item) (*models.Order, error) {
	order, err := models.NewOrder(customer, items)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// GetOrderByReference retrieves an order by its reference
func (s *OrderServiceImpl) GetOrderByReference(reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// CompleteOrder moves a pending order to completed
func (s *OrderServiceImpl) CompleteOrder(reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := order.Complete(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatus(reference, order.Status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}
