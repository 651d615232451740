package authsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookshop/model"
	"bookshop/util/hash"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.Customer, error)
	createFn  func(ctx context.Context, c *model.Customer) error
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.Password(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.ID = 42
			c.RoleName = model.RoleCustomer
			c.IsActive = true
			return nil
		},
	}
	svc := New(m, "test-secret", 5*time.Hour)

	u, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "Ann",
		LastName:  "Smith",
		Email:     "USER@Example.COM",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleCustomer, u.RoleName)
	require.NotEmpty(t, u.PasswordHash)
	require.True(t, hash.Verify("supersecret", u.PasswordHash))
}

func TestRegister_BadInput(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 5*time.Hour)

	_, err := svc.Register(context.Background(), model.RegisterReq{Email: " ", Password: "123456"})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "customers_email_key"}
		},
	}
	svc := New(m, "test-secret", 5*time.Hour)

	_, err := svc.Register(context.Background(), model.RegisterReq{
		FirstName: "Ann", LastName: "Smith",
		Email: "taken@example.com", Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestRegister_CreateError(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error { return errors.New("db down") },
	}
	svc := New(m, "test-secret", 5*time.Hour)

	_, err := svc.Register(context.Background(), model.RegisterReq{
		FirstName: "Ann", LastName: "Smith",
		Email: "ok@example.com", Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{
				ID: 7, Email: "user@example.com",
				PasswordHash: hashed, RoleName: model.RoleCustomer,
			}, nil
		},
	}
	svc := New(m, "test-secret", 5*time.Hour)

	tok, err := svc.Login(context.Background(), model.LoginReq{Login: "User@Example.com", Password: pw})
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	require.WithinDuration(t, time.Now().Add(5*time.Hour), tok.Expires, time.Minute)
}

func TestLogin_UnknownLogin(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 5*time.Hour)

	_, err := svc.Login(context.Background(), model.LoginReq{Login: "missing@example.com", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, ErrLoginNotFound, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{ID: 101, Email: "user@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret", 5*time.Hour)

	_, err := svc.Login(context.Background(), model.LoginReq{Login: "user@example.com", Password: "wrong-password"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestProfile_NotFound(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 5*time.Hour)

	_, err := svc.Profile(context.Background(), "ghost@example.com")
	require.Error(t, err)
	require.Equal(t, ErrLoginNotFound, Code(err))
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrEmailTaken, Code(makeErr(ErrEmailTaken)))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
