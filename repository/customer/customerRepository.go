package customerrepo

import (
	"context"
	"database/sql"
	"errors"

	"bookshop/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Create inserts a customer with the default Customer role.
func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
		INSERT INTO customers (first_name, last_name, email, password_hash, phone, role_id)
		VALUES ($1, $2, $3, $4, $5, (SELECT id FROM roles WHERE name = $6))
		RETURNING id, registered_at, is_active`
	err := r.db.QueryRowContext(ctx, q,
		c.FirstName, c.LastName, c.Email, c.PasswordHash, c.Phone, model.RoleCustomer,
	).Scan(&c.ID, &c.RegisteredAt, &c.IsActive)
	if err != nil {
		return err
	}
	c.RoleName = model.RoleCustomer
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const q = `
		SELECT c.id, c.first_name, c.last_name, c.email, c.password_hash,
		       c.phone, c.registered_at, c.is_active, COALESCE(r.name, $2)
		FROM customers c
		LEFT JOIN roles r ON r.id = c.role_id
		WHERE lower(c.email) = lower($1)`
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx, q, email, model.RoleCustomer).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PasswordHash,
		&c.Phone, &c.RegisteredAt, &c.IsActive, &c.RoleName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
