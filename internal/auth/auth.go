package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/maborges/travelmart/internal/models"
)

const tokenDuration = 24 * time.Hour

// AuthToken creates and verifies HMAC-signed auth tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken with the signing key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"uid"`
}

// CreateToken issues a signed token for the user
func (at *AuthToken) CreateToken(user *models.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		UserID: user.ID,
	})

	return token.SignedString(at.key)
}

// VerifyToken parses and validates a token string
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidToken
		}
		return at.key, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	return &models.TokenPayload{
		TokenID:   c.ID,
		UserID:    c.UserID,
		IssuedAt:  c.IssuedAt.Time,
		ExpiredAt: c.ExpiresAt.Time,
	}, nil
}
