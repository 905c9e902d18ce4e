package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/maborges/travelmart/internal/handler/http/mocks"
	"github.com/maborges/travelmart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentHandler_PayInstallment(t *testing.T) {
	tests := []struct {
		name           string
		token          *models.TokenPayload
		installmentID  string
		body           string
		setup          func(t *testing.T) *mocks.MockInstallmentService
		wantStatusCode int
	}{
		{
			// 200 — the installment is paid
			name: "valid_request_return_200",
			token: &models.TokenPayload{
				UserID: 7,
			},
			installmentID: "10",
			body:          `{"monto":110,"id_metodo":3,"denominacion":"VEN"}`,
			setup: func(t *testing.T) *mocks.MockInstallmentService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockInstallmentService(ctrl)
				svcMock.EXPECT().PayOne(gomock.Any(), uint64(7), uint64(10), 110.0, uint64(3), "VEN").
					Return(uint64(21), models.SaleStatusPending, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 404 — unknown installment
			name: "unknown_installment_return_404",
			token: &models.TokenPayload{
				UserID: 7,
			},
			installmentID: "99",
			body:          `{"monto":110,"id_metodo":3,"denominacion":"VEN"}`,
			setup: func(t *testing.T) *mocks.MockInstallmentService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockInstallmentService(ctrl)
				svcMock.EXPECT().PayOne(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uint64(0), "", models.ErrDataNotFound).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 403 — the installment belongs to another customer
			name: "foreign_installment_return_403",
			token: &models.TokenPayload{
				UserID: 7,
			},
			installmentID: "10",
			body:          `{"monto":110,"id_metodo":3,"denominacion":"VEN"}`,
			setup: func(t *testing.T) *mocks.MockInstallmentService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockInstallmentService(ctrl)
				svcMock.EXPECT().PayOne(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uint64(0), "", models.ErrSaleNotOwned).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusForbidden,
		},
		{
			// 400 — malformed installment id
			name: "bad_id_return_400",
			token: &models.TokenPayload{
				UserID: 7,
			},
			installmentID: "abc",
			body:          `{"monto":110,"id_metodo":3,"denominacion":"VEN"}`,
			setup: func(t *testing.T) *mocks.MockInstallmentService {

				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockInstallmentService(ctrl)
				svcMock.EXPECT().PayOne(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/cliente/cuotas/"+tt.installmentID+"/pagar", strings.NewReader(tt.body))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.installmentID)

			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.token != nil {
				ctx = context.WithValue(ctx, authPayloadKey, tt.token)
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)

			handler := NewInstallmentHandler(st)
			h := handler.PayInstallment()
			h(w, req.WithContext(ctx))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantStatusCode == http.StatusOK {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got payInstallmentResponse
				require.NoError(t, json.Unmarshal(resBody, &got))
				assert.True(t, got.Success)
				assert.Equal(t, uint64(21), got.PaymentID)
				assert.Equal(t, models.SaleStatusPending, got.FinalStatus)
			}
		})
	}
}

func TestInstallmentHandler_ListSaleInstallments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockInstallmentService(ctrl)
	svcMock.EXPECT().ListForSale(gomock.Any(), uint64(7), uint64(5)).Return([]models.Installment{
		{ID: 10, PlanID: 4, Number: 1, Amount: 110, Paid: true},
		{ID: 11, PlanID: 4, Number: 2, Amount: 110},
		{ID: 12, PlanID: 4, Number: 3, Amount: 110},
	}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/cliente/ventas/5/cuotas", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "5")

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, authPayloadKey, &models.TokenPayload{UserID: 7})

	w := httptest.NewRecorder()
	NewInstallmentHandler(svcMock).ListSaleInstallments()(w, req.WithContext(ctx))

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []installmentResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.True(t, got[0].Paid)
	assert.Equal(t, 2, got[1].Number)
}
