package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"bookshop/model"

	"github.com/shopspring/decimal"
)

// BookLine is the slice of a book row the order engine needs while holding
// the row lock.
type BookLine struct {
	ID        int64
	Title     string
	Price     decimal.Decimal
	Stock     int64
	Available bool
}

type OrderHead struct {
	ID         int64
	CustomerID int64
	StatusID   int64
}

type ItemLine struct {
	BookID   int64
	Quantity int64
}

// Tx is the set of operations available inside one order transaction.
type Tx interface {
	BookForUpdate(ctx context.Context, bookID int64) (*BookLine, error)
	UpdateBookStock(ctx context.Context, bookID, stock int64, available bool) error
	InsertOrder(ctx context.Context, customerID int64, shippingAddress string, statusID int64) (int64, error)
	InsertItem(ctx context.Context, orderID, bookID, quantity int64, unitPrice decimal.Decimal) error
	OrderForUpdate(ctx context.Context, orderID int64) (*OrderHead, []ItemLine, error)
	Restock(ctx context.Context, bookID, quantity int64) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type Repo interface {
	// InTx runs fn inside a database transaction; any error rolls the
	// whole transaction back.
	InTx(ctx context.Context, fn func(Tx) error) error

	ByID(ctx context.Context, orderID int64) (*model.Order, error)
	List(ctx context.Context, customerID *int64) ([]model.Order, error)
	StatusByID(ctx context.Context, statusID int64) (*model.Status, error)
	SetStatus(ctx context.Context, orderID, statusID int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) InTx(ctx context.Context, fn func(Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

// Hydrated reads: one joined query, grouped while scanning. Newest first.
const orderQuery = `
	SELECT o.id, o.customer_id,
	       c.first_name || ' ' || c.last_name, c.email,
	       o.order_date, o.shipping_address, o.status_id, s.name,
	       oi.id, oi.book_id, b.title,
	       a.first_name || ' ' || a.last_name,
	       oi.quantity, oi.unit_price
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN statuses s ON s.id = o.status_id
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN books b ON b.id = oi.book_id
	LEFT JOIN authors a ON a.id = b.author_id
	WHERE ($1::BIGINT IS NULL OR o.id = $1)
	  AND ($2::BIGINT IS NULL OR o.customer_id = $2)
	ORDER BY o.order_date DESC, o.id DESC, oi.id`

func (r *repo) ByID(ctx context.Context, orderID int64) (*model.Order, error) {
	orders, err := r.query(ctx, &orderID, nil)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (r *repo) List(ctx context.Context, customerID *int64) ([]model.Order, error) {
	return r.query(ctx, nil, customerID)
}

func (r *repo) query(ctx context.Context, orderID, customerID *int64) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, orderQuery, orderID, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		var itemID, bookID, qty sql.NullInt64
		var title, author sql.NullString
		var unitPrice decimal.NullDecimal
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail,
			&o.OrderDate, &o.ShippingAddress, &o.StatusID, &o.StatusName,
			&itemID, &bookID, &title, &author, &qty, &unitPrice,
		); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != o.ID {
			o.TotalAmount = decimal.Zero
			out = append(out, o)
		}
		if !itemID.Valid {
			continue
		}
		cur := &out[len(out)-1]
		item := model.OrderItem{
			ID:         itemID.Int64,
			BookID:     bookID.Int64,
			BookTitle:  title.String,
			AuthorName: author.String,
			Quantity:   qty.Int64,
			UnitPrice:  unitPrice.Decimal,
		}
		item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		cur.TotalAmount = cur.TotalAmount.Add(item.TotalPrice)
		cur.Items = append(cur.Items, item)
	}
	return out, rows.Err()
}

func (r *repo) StatusByID(ctx context.Context, statusID int64) (*model.Status, error) {
	const q = `SELECT id, name FROM statuses WHERE id = $1`
	st := &model.Status{}
	err := r.db.QueryRowContext(ctx, q, statusID).Scan(&st.ID, &st.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (r *repo) SetStatus(ctx context.Context, orderID, statusID int64) (bool, error) {
	const q = `UPDATE orders SET status_id = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, orderID, statusID)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}

// ----- transaction-scoped operations -----

type pgTx struct{ tx *sql.Tx }

func (t *pgTx) BookForUpdate(ctx context.Context, bookID int64) (*BookLine, error) {
	const q = `
		SELECT id, title, price, stock_quantity, is_available
		FROM books
		WHERE id = $1
		FOR UPDATE`
	b := &BookLine{}
	err := t.tx.QueryRowContext(ctx, q, bookID).Scan(&b.ID, &b.Title, &b.Price, &b.Stock, &b.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (t *pgTx) UpdateBookStock(ctx context.Context, bookID, stock int64, available bool) error {
	const q = `
		UPDATE books
		SET stock_quantity = $2, is_available = $3
		WHERE id = $1`
	_, err := t.tx.ExecContext(ctx, q, bookID, stock, available)
	return err
}

func (t *pgTx) InsertOrder(ctx context.Context, customerID int64, shippingAddress string, statusID int64) (int64, error) {
	const q = `
		INSERT INTO orders (customer_id, shipping_address, status_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	if err := t.tx.QueryRowContext(ctx, q, customerID, shippingAddress, statusID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (t *pgTx) InsertItem(ctx context.Context, orderID, bookID, quantity int64, unitPrice decimal.Decimal) error {
	const q = `
		INSERT INTO order_items (order_id, book_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`
	_, err := t.tx.ExecContext(ctx, q, orderID, bookID, quantity, unitPrice)
	return err
}

func (t *pgTx) OrderForUpdate(ctx context.Context, orderID int64) (*OrderHead, []ItemLine, error) {
	const q = `
		SELECT id, customer_id, status_id
		FROM orders
		WHERE id = $1
		FOR UPDATE`
	h := &OrderHead{}
	err := t.tx.QueryRowContext(ctx, q, orderID).Scan(&h.ID, &h.CustomerID, &h.StatusID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	const qi = `SELECT book_id, quantity FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := t.tx.QueryContext(ctx, qi, orderID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var items []ItemLine
	for rows.Next() {
		var it ItemLine
		if err := rows.Scan(&it.BookID, &it.Quantity); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return h, items, rows.Err()
}

func (t *pgTx) Restock(ctx context.Context, bookID, quantity int64) error {
	const q = `
		UPDATE books
		SET stock_quantity = stock_quantity + $2,
		    is_available = TRUE
		WHERE id = $1`
	_, err := t.tx.ExecContext(ctx, q, bookID, quantity)
	return err
}

func (t *pgTx) DeleteOrder(ctx context.Context, orderID int64) error {
	// order_items cascade on the FK
	const q = `DELETE FROM orders WHERE id = $1`
	_, err := t.tx.ExecContext(ctx, q, orderID)
	return err
}
