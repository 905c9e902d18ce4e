package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/maborges/travelmart/internal/models"
	"github.com/maborges/travelmart/internal/repository/postgres"
)

const (
	insertUserQuery = `
						INSERT INTO clientes (correo, clave_hash)
						values ($1, $2)
						RETURNING id, correo, clave_hash, creado_en
`
	selectUserByEmailQuery = `
						SELECT id, correo, clave_hash, creado_en FROM clientes
						WHERE correo = $1
`
)

// UserRepository implements UserRepository interface
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new customer account
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := ur.db.QueryRow(ctx, insertUserQuery, user.Email, user.PasswordHash).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return user, nil
}

// GetUserByEmail returns customer account by email
func (ur *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByEmailQuery, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
