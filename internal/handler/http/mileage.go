package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maborges/travelmart/internal/models"
)

// MileageService reads mileage account state
type MileageService interface {
	// GetAccount returns the customer's mileage account
	GetAccount(ctx context.Context, customerID uint64) (*models.MileageAccount, error)
}

// MileageHandler represents HTTP handler for mileage requests
type MileageHandler struct {
	svc MileageService
}

// NewMileageHandler creates new MileageHandler instance
func NewMileageHandler(svc MileageService) *MileageHandler {
	return &MileageHandler{svc: svc}
}

type mileageResponse struct {
	Balance int64 `json:"saldo"`
}

// GetMileageBalance returns the customer's miles balance
// 200 — successful request;
// 401 — the customer is not authenticated;
// 404 — the customer has no mileage account;
// 500 — internal server error.
func (mh *MileageHandler) GetMileageBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		account, err := mh.svc.GetAccount(r.Context(), payload.UserID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNoMileageAccount):
				http.Error(w, "mileage account not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(mileageResponse{Balance: account.Balance}); err != nil {
			return
		}
	}
}
