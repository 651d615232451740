package booksvc_test

import (
	"context"
	"testing"

	"bookshop/model"
	booksvc "bookshop/service/book"

	"github.com/shopspring/decimal"
)

type repoMock struct {
	listFn       func(ctx context.Context, search string, authorID *int64) ([]model.Book, error)
	byIDFn       func(ctx context.Context, id int64) (*model.Book, error)
	createFn     func(ctx context.Context, b *model.Book) error
	updateFn     func(ctx context.Context, b *model.Book) (bool, error)
	deleteFn     func(ctx context.Context, id int64) (bool, error)
	isbnTakenFn  func(ctx context.Context, isbn string, excludeID int64) (bool, error)
	referencedFn func(ctx context.Context, bookID int64) (bool, error)
}

func (m *repoMock) List(ctx context.Context, search string, authorID *int64) ([]model.Book, error) {
	return m.listFn(ctx, search, authorID)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Book, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) Update(ctx context.Context, b *model.Book) (bool, error) {
	return m.updateFn(ctx, b)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }
func (m *repoMock) IsbnTaken(ctx context.Context, isbn string, excludeID int64) (bool, error) {
	if m.isbnTakenFn == nil {
		return false, nil
	}
	return m.isbnTakenFn(ctx, isbn, excludeID)
}
func (m *repoMock) ReferencedByOrders(ctx context.Context, bookID int64) (bool, error) {
	if m.referencedFn == nil {
		return false, nil
	}
	return m.referencedFn(ctx, bookID)
}

type authorsMock struct{ exists bool }

func (a authorsMock) Exists(ctx context.Context, id int64) (bool, error) { return a.exists, nil }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreate_UnknownAuthorRejected(t *testing.T) {
	s := booksvc.New(&repoMock{}, authorsMock{exists: false})
	b := &model.Book{Title: "T", AuthorID: 9, Price: price("10.00")}
	err := s.Create(context.Background(), b)
	if booksvc.Code(err) != booksvc.ErrAuthorNotFound {
		t.Fatalf("got %v; want ErrAuthorNotFound", err)
	}
}

func TestCreate_NonPositivePriceRejected(t *testing.T) {
	s := booksvc.New(&repoMock{}, authorsMock{exists: true})
	for _, p := range []string{"0", "-1.50"} {
		b := &model.Book{Title: "T", AuthorID: 1, Price: price(p)}
		if err := s.Create(context.Background(), b); booksvc.Code(err) != booksvc.ErrBadPrice {
			t.Fatalf("price %s: got %v; want ErrBadPrice", p, err)
		}
	}
}

func TestCreate_DuplicateIsbnRejected(t *testing.T) {
	isbn := "978-3-16-148410-0"
	m := &repoMock{
		isbnTakenFn: func(ctx context.Context, got string, excludeID int64) (bool, error) {
			return got == isbn, nil
		},
	}
	s := booksvc.New(m, authorsMock{exists: true})
	b := &model.Book{Title: "T", AuthorID: 1, Isbn: &isbn, Price: price("10.00")}
	if err := s.Create(context.Background(), b); booksvc.Code(err) != booksvc.ErrIsbnTaken {
		t.Fatalf("got %v; want ErrIsbnTaken", err)
	}
}

func TestCreate_ZeroStockNotAvailable(t *testing.T) {
	var saved *model.Book
	m := &repoMock{
		createFn: func(ctx context.Context, b *model.Book) error {
			b.ID = 5
			saved = b
			return nil
		},
	}
	s := booksvc.New(m, authorsMock{exists: true})

	b := &model.Book{Title: "T", AuthorID: 1, Price: price("10.00"), StockQuantity: 0, IsAvailable: true}
	if err := s.Create(context.Background(), b); err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.IsAvailable {
		t.Fatal("zero-stock book must not be available")
	}
}

func TestUpdate_ZeroStockForcesUnavailable(t *testing.T) {
	var saved *model.Book
	m := &repoMock{
		updateFn: func(ctx context.Context, b *model.Book) (bool, error) {
			saved = b
			return true, nil
		},
	}
	s := booksvc.New(m, authorsMock{exists: true})

	b := &model.Book{ID: 3, Title: "T", AuthorID: 1, Price: price("10.00"), StockQuantity: 0, IsAvailable: true}
	if err := s.Update(context.Background(), b); err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.IsAvailable {
		t.Fatal("zero-stock book must not stay available")
	}
}

func TestUpdate_ReplenishRestoresAvailability(t *testing.T) {
	var saved *model.Book
	m := &repoMock{
		updateFn: func(ctx context.Context, b *model.Book) (bool, error) {
			saved = b
			return true, nil
		},
	}
	s := booksvc.New(m, authorsMock{exists: true})

	b := &model.Book{ID: 3, Title: "T", AuthorID: 1, Price: price("10.00"), StockQuantity: 7, IsAvailable: true}
	if err := s.Update(context.Background(), b); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !saved.IsAvailable || saved.StockQuantity != 7 {
		t.Fatalf("got stock=%d available=%v; want 7 true", saved.StockQuantity, saved.IsAvailable)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, b *model.Book) (bool, error) { return false, nil },
	}
	s := booksvc.New(m, authorsMock{exists: true})

	b := &model.Book{ID: 404, Title: "T", AuthorID: 1, Price: price("10.00")}
	if err := s.Update(context.Background(), b); booksvc.Code(err) != booksvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestDelete_ReferencedByOrdersRejected(t *testing.T) {
	m := &repoMock{
		referencedFn: func(ctx context.Context, bookID int64) (bool, error) { return true, nil },
	}
	s := booksvc.New(m, authorsMock{exists: true})

	if err := s.Delete(context.Background(), 7); booksvc.Code(err) != booksvc.ErrReferenced {
		t.Fatalf("got %v; want ErrReferenced", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	s := booksvc.New(m, authorsMock{exists: true})

	if err := s.Delete(context.Background(), 7); booksvc.Code(err) != booksvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
