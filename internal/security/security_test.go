package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, VerifyPassword("s3cret-password", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("admin@example.com", testSecret, time.Minute)
	require.NoError(t, err)

	subject, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateAccessToken("admin@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := CreateAccessToken("admin@example.com", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := VerifyToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
