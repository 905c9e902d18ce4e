package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/maborges/travelmart/internal/handler/http/mocks"
	"github.com/maborges/travelmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckoutHandler_Checkout(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockCheckoutService
		wantStatusCode int
		wantBody       *checkoutResponse
	}{
		{
			// 200 — the whole batch succeeded
			name: "all_sales_succeed_return_200",
			token: &models.TokenPayload{
				UserID: 7,
			},
			body: `{"ventas":[{"id_venta":1,"metodo_pago":"tarjeta","datos_metodo_pago":{"numero_tarjeta":"4012888888881881","titular":"Ana Pérez"},"monto_pago":100,"denominacion":"VEN"}]}`,
			setup: func(t *testing.T) *mocks.MockCheckoutService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCheckoutService(ctrl)
				svcMock.EXPECT().Checkout(gomock.Any(), uint64(7), gomock.Any()).Return(models.CheckoutResult{
					Results: []models.SaleResult{
						{SaleID: 1, Success: true, PaymentID: 15, FinalStatus: models.SaleStatusPaid},
					},
					Succeeded: 1,
				}).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &checkoutResponse{
				OK: true,
				Results: []saleResultResponse{
					{SaleID: 1, Success: true, PaymentID: 15, FinalStatus: models.SaleStatusPaid},
				},
			},
		},
		{
			// 200 — partial mix is reported, never a batch failure
			name: "partial_batch_return_200",
			token: &models.TokenPayload{
				UserID: 7,
			},
			body: `{"ventas":[{"id_venta":1,"metodo_pago":"tarjeta","monto_pago":100,"denominacion":"VEN"},{"id_venta":2,"metodo_pago":"tarjeta","monto_pago":100,"denominacion":"VEN"}]}`,
			setup: func(t *testing.T) *mocks.MockCheckoutService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCheckoutService(ctrl)
				svcMock.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.CheckoutResult{
					Results: []models.SaleResult{
						{SaleID: 1, Success: true, PaymentID: 15, FinalStatus: models.SaleStatusPaid},
						{SaleID: 2, Success: false, Err: "la venta no pertenece al cliente autenticado"},
					},
					Succeeded: 1,
					Failed:    1,
				}).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &checkoutResponse{
				OK:      false,
				Partial: true,
				Results: []saleResultResponse{
					{SaleID: 1, Success: true, PaymentID: 15, FinalStatus: models.SaleStatusPaid},
					{SaleID: 2, Success: false, Err: "la venta no pertenece al cliente autenticado"},
				},
			},
		},
		{
			// 400 — empty ventas short-circuits before any per-sale work
			name: "empty_sales_return_400",
			token: &models.TokenPayload{
				UserID: 7,
			},
			body: `{"ventas":[]}`,
			setup: func(t *testing.T) *mocks.MockCheckoutService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCheckoutService(ctrl)
				svcMock.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — malformed body
			name: "malformed_body_return_400",
			token: &models.TokenPayload{
				UserID: 7,
			},
			body: `{"ventas":`,
			setup: func(t *testing.T) *mocks.MockCheckoutService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCheckoutService(ctrl)
				svcMock.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 500 — no auth payload in context
			name: "missing_auth_payload_return_500",
			body: `{"ventas":[{"id_venta":1}]}`,
			setup: func(t *testing.T) *mocks.MockCheckoutService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCheckoutService(ctrl)
				svcMock.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/cliente/checkout", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)

			ctx := req.Context()
			if tt.token != nil {
				ctx = context.WithValue(ctx, authPayloadKey, tt.token)
			}

			handler := NewCheckoutHandler(st)
			h := handler.Checkout()
			h(w, req.WithContext(ctx))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			if tt.wantBody != nil {
				var got checkoutResponse
				err = json.Unmarshal(resBody, &got)
				require.NoError(t, err)

				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCheckoutHandler_ForwardsRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockCheckoutService(ctrl)
	svcMock.EXPECT().Checkout(gomock.Any(), uint64(7), gomock.Len(1)).DoAndReturn(
		func(_ context.Context, _ uint64, requests []models.SaleCheckout) models.CheckoutResult {
			req := requests[0]
			assert.Equal(t, uint64(9), req.SaleID)
			assert.Equal(t, models.MethodMileage, req.MethodType)
			assert.Equal(t, int64(400), req.UseMiles)
			require.NotNil(t, req.Plan)
			assert.Equal(t, 3, req.Plan.Count)
			assert.Equal(t, 10.0, req.Plan.Rate)
			return models.CheckoutResult{
				Results:   []models.SaleResult{{SaleID: 9, Success: true, PaymentID: 1, FinalStatus: models.SaleStatusPending}},
				Succeeded: 1,
			}
		}).Times(1)

	body := `{"ventas":[{"id_venta":9,"metodo_pago":"millas","datos_metodo_pago":{},"monto_pago":50,"denominacion":"VEN","plan_cuotas":{"num_cuotas":3,"tasa_interes":10},"usar_millas":400}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/cliente/checkout", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), authPayloadKey, &models.TokenPayload{UserID: 7})

	w := httptest.NewRecorder()
	NewCheckoutHandler(svcMock).Checkout()(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
