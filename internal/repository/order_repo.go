package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// PostgresOrderRepository handles database operations for orders
type PostgresOrderRepository struct {
	db *sql.DB
}

// NewOrderRepositoryWithDB creates a new order repository with a specific database connection
func NewOrderRepositoryWithDB(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

// CreateOrder inserts the order and its item lines in one transaction
func (r *PostgresOrderRepository) CreateOrder(order *models.Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.Exec(`
		INSERT INTO orders (id, reference, first_name, last_name, postal_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		order.ID,
		order.Reference,
		order.Customer.FirstName,
		order.Customer.LastName,
		order.Customer.PostalCode,
		order.Status,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i, it := range order.Items {
		_, err = tx.Exec(`
			INSERT INTO order_items (order_id, position, item_id, name, price_cents)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, i, it.ID, it.Name, int64(it.Price))
		if err != nil {
			return fmt.Errorf("failed to create order item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now

	return nil
}

// GetOrderByReference retrieves an order and its lines by reference
func (r *PostgresOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	query := `
		SELECT id, reference, first_name, last_name, postal_code, status, created_at, updated_at
		FROM orders
		WHERE reference = $1
	`

	order := &models.Order{}
	err := r.db.QueryRow(query, reference).Scan(
		&order.ID,
		&order.Reference,
		&order.Customer.FirstName,
		&order.Customer.LastName,
		&order.Customer.PostalCode,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", services.ErrOrderNotFound, reference)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Items, err = r.items(order.ID)
	if err != nil {
		return nil, err
	}
	order.Totals = catalog.ComputeTotals(order.Items)

	return order, nil
}

func (r *PostgresOrderRepository) items(orderID string) ([]catalog.Item, error) {
	rows, err := r.db.Query(`
		SELECT item_id, name, price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		var (
			id    int
			name  string
			price int64
		)
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		it, err := catalog.FindByID(id)
		if err != nil {
			it = catalog.Item{ID: id}
		}
		it.Name = name
		it.Price = catalog.Cents(price)
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateOrderStatus updates the status of an order
func (r *PostgresOrderRepository) UpdateOrderStatus(reference string, status models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE reference = $3
	`

	result, err := r.db.Exec(query, status, time.Now(), reference)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", services.ErrOrderNotFound, reference)
	}

	return nil
}
