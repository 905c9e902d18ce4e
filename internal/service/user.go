package service

import (
	"context"
	"errors"

	"github.com/maborges/travelmart/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is interface for interacting with customer accounts
type UserRepository interface {
	// CreateUser inserts new customer account
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns customer account by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService registers and authenticates customers
type UserService struct {
	repo  UserRepository
	token TokenService
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository, token TokenService) *UserService {
	return &UserService{
		repo:  repo,
		token: token,
	}
}

// Register creates the customer account and returns an auth token
func (us *UserService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := us.repo.CreateUser(ctx, &models.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return "", models.ErrUserExists
		}
		return "", err
	}

	return us.token.CreateToken(user)
}

// Login verifies the credentials and returns an auth token
func (us *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return us.token.CreateToken(user)
}
