package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func mapClaims(t *testing.T, tok *jwt.Token) jwt.MapClaims {
	t.Helper()
	mc, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return mc
}

func TestIssueAndParse(t *testing.T) {
	tok, exp, err := Issue(secret, "user@example.com", "Customer", 5*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(5*time.Hour), exp, time.Minute)

	parsed, err := ParseAuth(tok, secret)
	require.NoError(t, err)
	claims := mapClaims(t, parsed)
	require.Equal(t, "user@example.com", claims["name"])
	require.Equal(t, "Customer", claims["role"])
}

func TestParseBearerPrefix(t *testing.T) {
	tok, _, err := Issue(secret, "user@example.com", "Admin", time.Hour)
	require.NoError(t, err)

	parsed, err := ParseAuth("Bearer "+tok, secret)
	require.NoError(t, err)
	require.Equal(t, "Admin", mapClaims(t, parsed)["role"])
}

func TestParseWrongSecret(t *testing.T) {
	tok, _, err := Issue(secret, "user@example.com", "Customer", time.Hour)
	require.NoError(t, err)

	_, err = ParseAuth(tok, "other-secret")
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	tok, _, err := Issue(secret, "user@example.com", "Customer", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAuth(tok, secret)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseAuth("", secret)
	require.Error(t, err)
	_, err = ParseAuth("Bearer ", secret)
	require.Error(t, err)
	_, err = ParseAuth("not-a-token", secret)
	require.Error(t, err)
}
