package booksvc

import (
	"context"
	"errors"

	"bookshop/model"
	bookrepo "bookshop/repository/book"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrCode string

const (
	ErrNotFound       ErrCode = "BOOK_NOT_FOUND"
	ErrAuthorNotFound ErrCode = "AUTHOR_NOT_FOUND"
	ErrIsbnTaken      ErrCode = "ISBN_TAKEN"
	ErrReferenced     ErrCode = "BOOK_REFERENCED"
	ErrBadPrice       ErrCode = "BAD_PRICE"
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

// Authors is the slice of the author repository the book rules need.
type Authors interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	List(ctx context.Context, search string, authorID *int64) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r  bookrepo.Repo
	ar Authors
}

func New(r bookrepo.Repo, ar Authors) Service { return &service{r: r, ar: ar} }

func (s *service) List(ctx context.Context, search string, authorID *int64) ([]model.Book, error) {
	return s.r.List(ctx, search, authorID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, makeErr(ErrNotFound)
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, b *model.Book) error {
	if err := s.checkRules(ctx, b); err != nil {
		return err
	}
	b.IsAvailable = b.StockQuantity > 0
	if err := s.r.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return makeErr(ErrIsbnTaken)
		}
		return err
	}
	return nil
}

func (s *service) Update(ctx context.Context, b *model.Book) error {
	if err := s.checkRules(ctx, b); err != nil {
		return err
	}
	// StockQuantity == 0 always forces unavailability; replenishing stock
	// may restore it.
	if b.StockQuantity == 0 {
		b.IsAvailable = false
	}
	ok, err := s.r.Update(ctx, b)
	if err != nil {
		if isUniqueViolation(err) {
			return makeErr(ErrIsbnTaken)
		}
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

// Delete refuses books referenced by any order item; historical orders
// keep their book rows.
func (s *service) Delete(ctx context.Context, id int64) error {
	referenced, err := s.r.ReferencedByOrders(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return makeErr(ErrReferenced)
	}
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return makeErr(ErrReferenced)
		}
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) checkRules(ctx context.Context, b *model.Book) error {
	if !b.Price.IsPositive() {
		return makeErr(ErrBadPrice)
	}
	exists, err := s.ar.Exists(ctx, b.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		return makeErr(ErrAuthorNotFound)
	}
	if b.Isbn != nil && *b.Isbn != "" {
		taken, err := s.r.IsbnTaken(ctx, *b.Isbn, b.ID)
		if err != nil {
			return err
		}
		if taken {
			return makeErr(ErrIsbnTaken)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
