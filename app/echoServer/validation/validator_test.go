package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	v := New()
	require.Error(t, v.Validate(&payload{}))
	require.Error(t, v.Validate(&payload{Email: "not-an-email"}))
	require.NoError(t, v.Validate(&payload{Email: "user@example.com"}))
}

func TestEchoValidatorHook(t *testing.T) {
	e := echo.New()
	e.Validator = New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	require.Error(t, c.Validate(&payload{}))
	require.NoError(t, c.Validate(&payload{Email: "user@example.com"}))
}
