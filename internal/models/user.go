package models

import "time"

// User is a registered customer account
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPayload is the verified content of an auth token
type TokenPayload struct {
	TokenID   string
	UserID    uint64
	IssuedAt  time.Time
	ExpiredAt time.Time
}
