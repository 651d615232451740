package authorrepo

import (
	"context"
	"database/sql"
	"errors"

	"bookshop/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Author, error)
	ByID(ctx context.Context, id int64) (*model.Author, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context) ([]model.Author, error) {
	const q = `
		SELECT id, first_name, last_name, country
		FROM authors
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Country); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Author, error) {
	const q = `
		SELECT id, first_name, last_name, country
		FROM authors
		WHERE id = $1`
	a := &model.Author{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&ok)
	return ok, err
}

func (r *repo) Create(ctx context.Context, a *model.Author) error {
	const q = `
		INSERT INTO authors (first_name, last_name, country)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q, a.FirstName, a.LastName, a.Country).Scan(&a.ID)
}

func (r *repo) Update(ctx context.Context, a *model.Author) (bool, error) {
	const q = `
		UPDATE authors
		SET first_name = $2, last_name = $3, country = $4
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, a.ID, a.FirstName, a.LastName, a.Country)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM authors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}
