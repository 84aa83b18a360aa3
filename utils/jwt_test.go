package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "ADMIN", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestExpiredTokenReportsExpiry(t *testing.T) {
	token, err := GenerateToken(1, "USER", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "TOKEN_EXPIRED", ae.Code)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(1, "USER", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret-entirely-0000000000")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "TOKEN_INVALID", ae.Code)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ParseToken("definitely.not.a-jwt", testSecret)
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "TOKEN_INVALID", ae.Code)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("Passw0rdd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rdd", hash)

	assert.True(t, CheckPassword("Passw0rdd", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
