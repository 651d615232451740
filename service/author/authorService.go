package authorsvc

import (
	"context"
	"errors"

	"bookshop/model"
	authorrepo "bookshop/repository/author"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "AUTHOR_NOT_FOUND"
	ErrHasBooks ErrCode = "AUTHOR_HAS_BOOKS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) error
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r authorrepo.Repo }

func New(r authorrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Author, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Author, error) {
	a, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, makeErr(ErrNotFound)
	}
	return a, nil
}

func (s *service) Create(ctx context.Context, a *model.Author) error {
	return s.r.Create(ctx, a)
}

func (s *service) Update(ctx context.Context, a *model.Author) error {
	ok, err := s.r.Update(ctx, a)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

// Delete rejects authors that still own books (FK violation), it never
// cascades into the catalog.
func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return makeErr(ErrHasBooks)
		}
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}
