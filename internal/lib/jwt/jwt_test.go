package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := NewToken(testSecret, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), userID)
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := NewToken(testSecret, 42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	require.Error(t, err)
}

func TestMalformedToken(t *testing.T) {
	t.Parallel()

	_, err := ParseToken(testSecret, "not.a.token")
	require.Error(t, err)

	_, err = ParseToken(testSecret, "")
	require.Error(t, err)
}
