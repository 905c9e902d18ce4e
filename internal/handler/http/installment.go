package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/maborges/travelmart/internal/models"
)

// InstallmentService lists schedules and pays single installments
type InstallmentService interface {
	// ListForSale returns the installment schedule of an owned sale
	ListForSale(ctx context.Context, customerID, saleID uint64) ([]models.Installment, error)
	// PayOne pays a single pending installment, idempotent on resubmission
	PayOne(ctx context.Context, customerID, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, string, error)
}

// InstallmentHandler represents HTTP handler for installment requests
type InstallmentHandler struct {
	svc InstallmentService
}

// NewInstallmentHandler creates new InstallmentHandler instance
func NewInstallmentHandler(svc InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{svc: svc}
}

type installmentResponse struct {
	ID     uint64  `json:"id"`
	Number int     `json:"numero"`
	Amount float64 `json:"monto"`
	Paid   bool    `json:"pagada"`
	DueAt  string  `json:"vence_en"`
	PaidAt string  `json:"pagada_en,omitempty"`
}

// ListSaleInstallments returns the installment schedule of a sale
// 200 — successful request;
// 401 — the customer is not authenticated;
// 403 — the sale belongs to another customer;
// 404 — the sale does not exist;
// 500 — internal server error.
func (ih *InstallmentHandler) ListSaleInstallments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		saleID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		installments, err := ih.svc.ListForSale(r.Context(), payload.UserID, saleID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrSaleNotFound):
				http.Error(w, "sale not found", http.StatusNotFound)
			case errors.Is(err, models.ErrSaleNotOwned):
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		resp := make([]installmentResponse, 0, len(installments))
		for _, inst := range installments {
			ir := installmentResponse{
				ID:     inst.ID,
				Number: inst.Number,
				Amount: inst.Amount,
				Paid:   inst.Paid,
				DueAt:  inst.DueAt.Format(time.DateOnly),
			}
			if inst.PaidAt != nil {
				ir.PaidAt = inst.PaidAt.Format(time.RFC3339)
			}
			resp = append(resp, ir)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type payInstallmentRequest struct {
	Amount       float64 `json:"monto"`
	MethodID     uint64  `json:"id_metodo"`
	Denomination string  `json:"denominacion"`
}

type payInstallmentResponse struct {
	Success     bool   `json:"exito"`
	PaymentID   uint64 `json:"id_pago"`
	FinalStatus string `json:"estado_final"`
}

// PayInstallment pays one pending installment
// 200 — the installment is paid (also on recovered resubmission);
// 401 — the customer is not authenticated;
// 403 — the installment or method belongs to another customer;
// 404 — the installment does not exist;
// 500 — internal server error.
func (ih *InstallmentHandler) PayInstallment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		installmentID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var payReq payInstallmentRequest

		if err := json.NewDecoder(r.Body).Decode(&payReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		paymentID, status, err := ih.svc.PayOne(r.Context(), payload.UserID, installmentID, payReq.Amount, payReq.MethodID, payReq.Denomination)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "installment not found", http.StatusNotFound)
			case errors.Is(err, models.ErrSaleNotOwned), errors.Is(err, models.ErrMethodNotOwned):
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(payInstallmentResponse{
			Success:     true,
			PaymentID:   paymentID,
			FinalStatus: status,
		}); err != nil {
			return
		}
	}
}
