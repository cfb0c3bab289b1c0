package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/themizzi/saucesuite/internal/catalog"
)

// OrderStatus represents valid order states
type OrderStatus string

// Order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a checkout placed from a session cart
type Order struct {
	ID        string
	Reference string
	Customer  CustomerInfo
	Items     []catalog.Item
	Totals    catalog.Totals
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain errors
var (
	ErrEmptyOrder              = errors.New("order has no items")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// NewOrder creates a pending order for the given customer and cart lines
func NewOrder(customer CustomerInfo, items []catalog.Item) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	lines := make([]catalog.Item, len(items))
	copy(lines, items)

	id := uuid.New()
	now := time.Now()

	return &Order{
		ID:        id.String(),
		Reference: fmt.Sprintf("SAUCE-%s", id.String()[:8]),
		Customer:  customer,
		Items:     lines,
		Totals:    catalog.ComputeTotals(lines),
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Complete marks a pending order as completed
func (o *Order) Complete() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot complete order with status %s", ErrInvalidStatusTransition, o.Status)
	}
	o.Status = OrderStatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCompleted {
		return fmt.Errorf("%w: cannot cancel a completed order", ErrInvalidStatusTransition)
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// IsCompleted returns true once the order has been finished
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// ItemNames lists the ordered items' display names
func (o *Order) ItemNames() []string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		names = append(names, it.Name)
	}
	return names
}
