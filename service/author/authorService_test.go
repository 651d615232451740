package authorsvc_test

import (
	"context"
	"testing"

	"bookshop/model"
	authorsvc "bookshop/service/author"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type repoMock struct {
	byIDFn   func(ctx context.Context, id int64) (*model.Author, error)
	updateFn func(ctx context.Context, a *model.Author) (bool, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *repoMock) List(ctx context.Context) ([]model.Author, error) { return nil, nil }
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Author, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Exists(ctx context.Context, id int64) (bool, error) { return false, nil }
func (m *repoMock) Create(ctx context.Context, a *model.Author) error  { return nil }
func (m *repoMock) Update(ctx context.Context, a *model.Author) (bool, error) {
	return m.updateFn(ctx, a)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }

func TestGet_NotFound(t *testing.T) {
	s := authorsvc.New(&repoMock{})
	_, err := s.Get(context.Background(), 404)
	if authorsvc.Code(err) != authorsvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, a *model.Author) (bool, error) { return false, nil },
	}
	s := authorsvc.New(m)
	err := s.Update(context.Background(), &model.Author{ID: 404, FirstName: "A", LastName: "B"})
	if authorsvc.Code(err) != authorsvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestDelete_WithBooksRejected(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			return false, &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "books_author_id_fkey"}
		},
	}
	s := authorsvc.New(m)
	err := s.Delete(context.Background(), 1)
	if authorsvc.Code(err) != authorsvc.ErrHasBooks {
		t.Fatalf("got %v; want ErrHasBooks", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	s := authorsvc.New(m)
	err := s.Delete(context.Background(), 404)
	if authorsvc.Code(err) != authorsvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
