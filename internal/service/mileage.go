package service

import (
	"context"
	"errors"

	"github.com/maborges/travelmart/internal/models"
)

// MileageService reads mileage account state
type MileageService struct {
	repo MileageRepository
}

// NewMileageService creates new MileageService instance
func NewMileageService(repo MileageRepository) *MileageService {
	return &MileageService{repo: repo}
}

// GetAccount returns the customer's mileage account
func (ms *MileageService) GetAccount(ctx context.Context, customerID uint64) (*models.MileageAccount, error) {
	account, err := ms.repo.GetAccount(ctx, customerID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, models.ErrNoMileageAccount
		}
		return nil, err
	}

	return account, nil
}
