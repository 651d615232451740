package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"bookshop/model"
)

type Repo interface {
	List(ctx context.Context, search string, authorID *int64) ([]model.Book, error)
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	IsbnTaken(ctx context.Context, isbn string, excludeID int64) (bool, error)
	ReferencedByOrders(ctx context.Context, bookID int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const bookCols = `
	b.id, b.title, b.author_id, a.first_name || ' ' || a.last_name,
	b.isbn, b.price, b.pages, b.stock_quantity, b.is_available`

func scanBook(row interface{ Scan(...any) error }, b *model.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName,
		&b.Isbn, &b.Price, &b.Pages, &b.StockQuantity, &b.IsAvailable)
}

func (r *repo) List(ctx context.Context, search string, authorID *int64) ([]model.Book, error) {
	// Empty search matches everything; nil authorID skips the filter.
	const q = `
		SELECT ` + bookCols + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%')
		  AND ($2::BIGINT IS NULL OR b.author_id = $2)
		ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, q, search, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
		SELECT ` + bookCols + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1`
	b := &model.Book{}
	err := scanBook(r.db.QueryRowContext(ctx, q, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	const q = `
		INSERT INTO books (title, author_id, isbn, price, pages, stock_quantity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		b.Title, b.AuthorID, b.Isbn, b.Price, b.Pages, b.StockQuantity, b.IsAvailable,
	).Scan(&b.ID)
}

func (r *repo) Update(ctx context.Context, b *model.Book) (bool, error) {
	const q = `
		UPDATE books
		SET title = $2, author_id = $3, isbn = $4, price = $5,
		    pages = $6, stock_quantity = $7, is_available = $8
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		b.ID, b.Title, b.AuthorID, b.Isbn, b.Price, b.Pages, b.StockQuantity, b.IsAvailable)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM books WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}

func (r *repo) IsbnTaken(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, isbn, excludeID).Scan(&ok)
	return ok, err
}

func (r *repo) ReferencedByOrders(ctx context.Context, bookID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM order_items WHERE book_id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, bookID).Scan(&ok)
	return ok, err
}
