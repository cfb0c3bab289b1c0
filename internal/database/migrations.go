package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/logging"
)

// Schema creates the order tables. Item lines keep the name and price they
// were sold at.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
	id UUID PRIMARY KEY,
	reference VARCHAR(255) UNIQUE NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	postal_code VARCHAR(32) NOT NULL,
	status VARCHAR(50) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	item_id INTEGER NOT NULL,
	name VARCHAR(255) NOT NULL,
	price_cents BIGINT NOT NULL,
	PRIMARY KEY (order_id, position)
);

CREATE INDEX IF NOT EXISTS idx_orders_reference ON orders(reference);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
`

// RunMigrations creates the necessary database tables
func RunMigrations(db *sql.DB, log logrus.FieldLogger) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create order tables: %w", err)
	}

	logging.Category(log, "database").Info("database migrations completed successfully")
	return nil
}
