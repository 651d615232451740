package ordersvc

import (
	"context"
	"errors"
	"fmt"

	"bookshop/model"
	orderrepo "bookshop/repository/order"

	"github.com/shopspring/decimal"
)

// statusNew is the initial state of every order.
const statusNew int64 = 1

type ErrCode string

const (
	ErrOrderNotFound    ErrCode = "ORDER_NOT_FOUND"
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrBookNotFound     ErrCode = "BOOK_NOT_FOUND"
	ErrBookUnavailable  ErrCode = "BOOK_UNAVAILABLE"
	ErrNoStock          ErrCode = "NO_STOCK"
	ErrNotOwner         ErrCode = "NOT_OWNER"
	ErrNotNew           ErrCode = "NOT_NEW"
	ErrStatusNotFound   ErrCode = "STATUS_NOT_FOUND"
	ErrTransitionDenied ErrCode = "TRANSITION_DENIED"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode) error { return codedError{code: c} }
func makeErrf(c ErrCode, format string, args ...any) error {
	return codedError{code: c, msg: fmt.Sprintf(format, args...)}
}

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Identity is the verified caller, as carried by the bearer token.
type Identity struct {
	Email string
	Role  string
}

// Privileged reports whether the caller may act on any customer's orders.
func (i Identity) Privileged() bool {
	return i.Role == model.RoleAdmin || i.Role == model.RoleManager
}

type Line struct {
	BookID   int64
	Quantity int64
}

// Customers is the slice of the customer repository the engine needs.
type Customers interface {
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type Service interface {
	Create(ctx context.Context, ident Identity, shippingAddress string, items []Line) (*model.Order, error)
	Get(ctx context.Context, orderID int64, ident Identity) (*model.Order, error)
	List(ctx context.Context, ident Identity) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	Delete(ctx context.Context, orderID int64, ident Identity) error
	UpdateStatus(ctx context.Context, orderID, statusID int64) (*model.Status, error)
}

type service struct {
	r      orderrepo.Repo
	cr     Customers
	policy TransitionPolicy
}

func New(r orderrepo.Repo, cr Customers, policy TransitionPolicy) Service {
	if policy == nil {
		policy = AllowAllTransitions()
	}
	return &service{r: r, cr: cr, policy: policy}
}

// Create validates each line against the catalog, locks in unit prices,
// reserves stock, and persists the order with its items in a single
// transaction, so a failure on any line leaves every book untouched.
func (s *service) Create(ctx context.Context, ident Identity, shippingAddress string, items []Line) (*model.Order, error) {
	cust, err := s.customer(ctx, ident.Email)
	if err != nil {
		return nil, err
	}

	var orderID int64
	err = s.r.InTx(ctx, func(tx orderrepo.Tx) error {
		type picked struct {
			bookID, qty int64
			unitPrice   decimal.Decimal
		}
		lines := make([]picked, 0, len(items))

		for _, it := range items {
			b, err := tx.BookForUpdate(ctx, it.BookID)
			if err != nil {
				return err
			}
			if b == nil {
				return makeErrf(ErrBookNotFound, "book with ID %d not found", it.BookID)
			}
			if !b.Available {
				return makeErrf(ErrBookUnavailable, "book %q is not available", b.Title)
			}
			if b.Stock < it.Quantity {
				return makeErrf(ErrNoStock, "not enough stock for book %q, available: %d", b.Title, b.Stock)
			}

			stock := b.Stock - it.Quantity
			if err := tx.UpdateBookStock(ctx, b.ID, stock, stock > 0); err != nil {
				return err
			}
			// price lock-in: the order keeps today's price forever
			lines = append(lines, picked{bookID: b.ID, qty: it.Quantity, unitPrice: b.Price})
		}

		id, err := tx.InsertOrder(ctx, cust.ID, shippingAddress, statusNew)
		if err != nil {
			return err
		}
		for _, ln := range lines {
			if err := tx.InsertItem(ctx, id, ln.bookID, ln.qty, ln.unitPrice); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.r.ByID(ctx, orderID)
}

func (s *service) Get(ctx context.Context, orderID int64, ident Identity) (*model.Order, error) {
	o, err := s.r.ByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, makeErr(ErrOrderNotFound)
	}
	if !ident.Privileged() {
		cust, err := s.customer(ctx, ident.Email)
		if err != nil {
			return nil, err
		}
		if o.CustomerID != cust.ID {
			return nil, makeErr(ErrNotOwner)
		}
	}
	return o, nil
}

func (s *service) List(ctx context.Context, ident Identity) ([]model.Order, error) {
	if ident.Privileged() {
		return s.r.List(ctx, nil)
	}
	cust, err := s.customer(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	return s.r.List(ctx, &cust.ID)
}

func (s *service) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.r.List(ctx, &customerID)
}

// Delete restocks every line item and removes the order with its items.
// Customers may only delete their own orders while still New; privileged
// roles delete unconditionally.
func (s *service) Delete(ctx context.Context, orderID int64, ident Identity) error {
	var custID int64
	if !ident.Privileged() {
		cust, err := s.customer(ctx, ident.Email)
		if err != nil {
			return err
		}
		custID = cust.ID
	}

	return s.r.InTx(ctx, func(tx orderrepo.Tx) error {
		head, items, err := tx.OrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if head == nil {
			return makeErr(ErrOrderNotFound)
		}
		if !ident.Privileged() {
			if head.CustomerID != custID {
				return makeErr(ErrNotOwner)
			}
			if head.StatusID != statusNew {
				return makeErr(ErrNotNew)
			}
		}
		for _, it := range items {
			if err := tx.Restock(ctx, it.BookID, it.Quantity); err != nil {
				return err
			}
		}
		return tx.DeleteOrder(ctx, orderID)
	})
}

func (s *service) UpdateStatus(ctx context.Context, orderID, statusID int64) (*model.Status, error) {
	o, err := s.r.ByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, makeErr(ErrOrderNotFound)
	}
	st, err := s.r.StatusByID(ctx, statusID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, makeErr(ErrStatusNotFound)
	}
	if !s.policy.Allowed(o.StatusID, statusID) {
		return nil, makeErrf(ErrTransitionDenied, "transition %s -> %s is not allowed", o.StatusName, st.Name)
	}
	ok, err := s.r.SetStatus(ctx, orderID, statusID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrOrderNotFound)
	}
	return st, nil
}

func (s *service) customer(ctx context.Context, email string) (*model.Customer, error) {
	cust, err := s.cr.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, makeErr(ErrCustomerNotFound)
	}
	return cust, nil
}
