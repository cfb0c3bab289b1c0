package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// MemoryOrderRepository keeps orders in process memory. It is the replica's
// default store when no database is configured.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewMemoryOrderRepository creates an empty repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: map[string]models.Order{}}
}

// CreateOrder stores a copy of the order, rejecting a duplicate reference
func (r *MemoryOrderRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.Reference]; ok {
		return fmt.Errorf("failed to create order: duplicate reference %s", order.Reference)
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.Reference] = copyOrder(*order)
	return nil
}

// GetOrderByReference returns a copy of the stored order
func (r *MemoryOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[reference]
	if !ok {
		return nil, fmt.Errorf("%w: %s", services.ErrOrderNotFound, reference)
	}
	o = copyOrder(o)
	return &o, nil
}

// UpdateOrderStatus sets the stored order's status
func (r *MemoryOrderRepository) UpdateOrderStatus(reference string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[reference]
	if !ok {
		return fmt.Errorf("%w: %s", services.ErrOrderNotFound, reference)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.orders[reference] = o
	return nil
}

// Len returns the number of stored orders
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func copyOrder(o models.Order) models.Order {
	o.Items = append([]catalog.Item(nil), o.Items...)
	return o
}
