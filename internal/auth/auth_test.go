package auth

import (
	"testing"

	"github.com/maborges/travelmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_RoundTrip(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	token, err := at.CreateToken(&models.User{ID: 7, Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), payload.UserID)
	assert.NotEmpty(t, payload.TokenID)
	assert.True(t, payload.ExpiredAt.After(payload.IssuedAt))
}

func TestAuthToken_WrongKey(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	token, err := at.CreateToken(&models.User{ID: 7})
	require.NoError(t, err)

	other := NewAuthToken([]byte("fedcba9876543210"))
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestAuthToken_Garbage(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	_, err := at.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
