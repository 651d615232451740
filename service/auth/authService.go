package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookshop/model"
	customerrepo "bookshop/repository/customer"
	"bookshop/util/hash"
	jwtutil "bookshop/util/jwt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrCode string

const (
	ErrEmailTaken    ErrCode = "EMAIL_TAKEN"
	ErrLoginNotFound ErrCode = "LOGIN_NOT_FOUND"
	ErrInvalidCreds  ErrCode = "INVALID_CREDENTIALS"
	ErrBadInput      ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, or "" for unclassified errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Token carries an issued bearer token with its absolute expiry.
type Token struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"Expires"`
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.Customer, error)
	Login(ctx context.Context, req model.LoginReq) (*Token, error)
	Profile(ctx context.Context, email string) (*model.Customer, error)
}

type service struct {
	cr     customerrepo.Repo
	secret string
	ttl    time.Duration
}

func New(cr customerrepo.Repo, secret string, ttl time.Duration) Service {
	return &service{cr: cr, secret: secret, ttl: ttl}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, makeErr(ErrBadInput)
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}

	c := &model.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: hashed,
		Phone:        req.Phone,
	}
	if err := s.cr.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, makeErr(ErrEmailTaken)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*Token, error) {
	c, err := s.cr.ByEmail(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, makeErr(ErrLoginNotFound)
	}
	if !hash.Verify(req.Password, c.PasswordHash) {
		return nil, makeErr(ErrInvalidCreds)
	}

	signed, exp, err := jwtutil.Issue(s.secret, c.Email, c.RoleName, s.ttl)
	if err != nil {
		return nil, err
	}
	return &Token{Token: signed, Expires: exp}, nil
}

func (s *service) Profile(ctx context.Context, email string) (*model.Customer, error) {
	c, err := s.cr.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, makeErr(ErrLoginNotFound)
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
