package database

import (
	"context"
	"database/sql"
)

// Bootstrap creates the schema and seeds the role/status lookup tables.
// Every statement is idempotent so it is safe to run on every start.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			id         BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(50) NOT NULL,
			last_name  VARCHAR(50) NOT NULL,
			country    VARCHAR(50)
		)`,
		`CREATE TABLE IF NOT EXISTS books (
			id             BIGSERIAL PRIMARY KEY,
			title          VARCHAR(200) NOT NULL,
			author_id      BIGINT NOT NULL REFERENCES authors(id),
			isbn           VARCHAR(20) UNIQUE,
			price          NUMERIC(10,2) NOT NULL CHECK (price > 0),
			pages          BIGINT,
			stock_quantity BIGINT NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
			is_available   BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id   BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id            BIGSERIAL PRIMARY KEY,
			first_name    VARCHAR(50) NOT NULL,
			last_name     VARCHAR(50) NOT NULL,
			email         VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			phone         VARCHAR(20),
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active     BOOLEAN NOT NULL DEFAULT TRUE,
			role_id       BIGINT REFERENCES roles(id)
		)`,
		`CREATE TABLE IF NOT EXISTS statuses (
			id   BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id               BIGSERIAL PRIMARY KEY,
			customer_id      BIGINT NOT NULL REFERENCES customers(id),
			order_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
			shipping_address VARCHAR(255) NOT NULL,
			status_id        BIGINT NOT NULL REFERENCES statuses(id)
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id         BIGSERIAL PRIMARY KEY,
			order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			book_id    BIGINT NOT NULL REFERENCES books(id),
			quantity   BIGINT NOT NULL DEFAULT 1 CHECK (quantity >= 1),
			unit_price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_book ON order_items(book_id)`,
		`INSERT INTO roles (id, name) VALUES (1,'Admin'), (2,'Manager'), (3,'Customer')
			ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO statuses (id, name)
			VALUES (1,'New'), (2,'Processing'), (3,'Shipped'), (4,'Completed'), (5,'Cancelled')
			ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('roles_id_seq', (SELECT MAX(id) FROM roles))`,
		`SELECT setval('statuses_id_seq', (SELECT MAX(id) FROM statuses))`,
	}

	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
