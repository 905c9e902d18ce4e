package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/maborges/travelmart/internal/models"
)

// CheckoutService processes a checkout batch for the authenticated customer
type CheckoutService interface {
	// Checkout processes the batch strictly in order
	Checkout(ctx context.Context, customerID uint64, requests []models.SaleCheckout) models.CheckoutResult
}

// CheckoutHandler represents HTTP handler for checkout requests
type CheckoutHandler struct {
	svc CheckoutService
}

// NewCheckoutHandler creates new CheckoutHandler instance
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type planRequest struct {
	NumCuotas   int     `json:"num_cuotas"`
	TasaInteres float64 `json:"tasa_interes"`
}

type saleCheckoutRequest struct {
	SaleID       uint64                   `json:"id_venta"`
	Method       string                   `json:"metodo_pago"`
	MethodData   models.PaymentMethodData `json:"datos_metodo_pago"`
	Amount       float64                  `json:"monto_pago"`
	Denomination string                   `json:"denominacion"`
	Plan         *planRequest             `json:"plan_cuotas,omitempty"`
	UseMiles     int64                    `json:"usar_millas,omitempty"`
}

type checkoutRequest struct {
	Sales []saleCheckoutRequest `json:"ventas"`
}

type saleResultResponse struct {
	SaleID      uint64 `json:"id_venta"`
	Success     bool   `json:"exito"`
	PaymentID   uint64 `json:"id_pago,omitempty"`
	FinalStatus string `json:"estado_final,omitempty"`
	Err         string `json:"error,omitempty"`
}

type checkoutResponse struct {
	OK      bool                 `json:"ok"`
	Partial bool                 `json:"parcial"`
	Results []saleResultResponse `json:"resultados"`
}

// Checkout processes a batch of sale payments
// 200 — the batch was processed (including all-failed, reported via ok:false);
// 400 — malformed body or empty ventas;
// 401 — the customer is not authenticated;
// 500 — internal server error.
func (ch *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var checkoutReq checkoutRequest

		if err := json.NewDecoder(r.Body).Decode(&checkoutReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if len(checkoutReq.Sales) == 0 {
			http.Error(w, "la lista de ventas es requerida", http.StatusBadRequest)
			return
		}

		requests := make([]models.SaleCheckout, 0, len(checkoutReq.Sales))
		for _, sale := range checkoutReq.Sales {
			req := models.SaleCheckout{
				SaleID:       sale.SaleID,
				MethodType:   sale.Method,
				MethodData:   sale.MethodData,
				Amount:       sale.Amount,
				Denomination: sale.Denomination,
				UseMiles:     sale.UseMiles,
			}
			if sale.Plan != nil {
				req.Plan = &models.PlanRequest{Count: sale.Plan.NumCuotas, Rate: sale.Plan.TasaInteres}
			}
			requests = append(requests, req)
		}

		result := ch.svc.Checkout(r.Context(), payload.UserID, requests)

		resp := checkoutResponse{
			OK:      result.Failed == 0,
			Partial: result.Succeeded > 0 && result.Failed > 0,
			Results: make([]saleResultResponse, 0, len(result.Results)),
		}
		for _, res := range result.Results {
			resp.Results = append(resp.Results, saleResultResponse{
				SaleID:      res.SaleID,
				Success:     res.Success,
				PaymentID:   res.PaymentID,
				FinalStatus: res.FinalStatus,
				Err:         res.Err,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}
