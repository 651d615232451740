package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	h, err := Password("supersecret")
	require.NoError(t, err)
	require.True(t, Verify("supersecret", h))
	require.False(t, Verify("not-the-password", h))
}

func TestPasswordFormat(t *testing.T) {
	h, err := Password("pw")
	require.NoError(t, err)

	parts := strings.Split(h, ".")
	require.Len(t, parts, 2)
	require.NotEmpty(t, parts[0])
	require.NotEmpty(t, parts[1])
}

func TestPasswordSaltsDiffer(t *testing.T) {
	h1, err := Password("same")
	require.NoError(t, err)
	h2, err := Password("same")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	require.True(t, Verify("same", h1))
	require.True(t, Verify("same", h2))
}

func TestVerifyFailsClosed(t *testing.T) {
	require.False(t, Verify("pw", ""))
	require.False(t, Verify("pw", "malformed-no-dot"))
	require.False(t, Verify("pw", "."))
	require.False(t, Verify("pw", "onlysalt."))
	require.False(t, Verify("pw", ".onlykey"))
	require.False(t, Verify("pw", "!!!not-base64!!!.also-not"))
}
