package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maborges/travelmart/internal/events"
	"github.com/maborges/travelmart/internal/models"
)

// InstallmentService pays single installments and lists schedules
type InstallmentService struct {
	sales        SaleRepository
	payments     PaymentRepository
	installments InstallmentRepository
	tx           TxRunner
	events       EventPublisher
}

// NewInstallmentService creates new InstallmentService instance
func NewInstallmentService(sales SaleRepository, payments PaymentRepository, installments InstallmentRepository, tx TxRunner, events EventPublisher) *InstallmentService {
	return &InstallmentService{
		sales:        sales,
		payments:     payments,
		installments: installments,
		tx:           tx,
		events:       events,
	}
}

// ListForSale returns the installment schedule of a sale owned by the customer
func (is *InstallmentService) ListForSale(ctx context.Context, customerID, saleID uint64) ([]models.Installment, error) {
	sale, err := is.sales.GetActiveSale(ctx, saleID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil, models.ErrSaleNotFound
		}
		return nil, err
	}

	if sale.CustomerID != customerID {
		return nil, models.ErrSaleNotOwned
	}

	return is.installments.GetInstallmentsBySale(ctx, saleID)
}

// PayOne pays a single pending installment with an existing payment
// method. A resubmission that races the paid flag is recovered by
// adopting the payment already registered, so retries are idempotent.
func (is *InstallmentService) PayOne(ctx context.Context, customerID, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, string, error) {
	var paymentID uint64
	var adopted bool
	var status string
	var saleID uint64

	err := is.tx.WithTx(ctx, func(ctx context.Context) error {
		var ownerID uint64
		var err error
		saleID, ownerID, err = is.installments.GetInstallmentSale(ctx, installmentID)
		if err != nil {
			return err
		}
		if ownerID != customerID {
			return models.ErrSaleNotOwned
		}

		method, err := is.payments.GetMethod(ctx, methodID)
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				return models.ErrMethodNotOwned
			}
			return err
		}
		if method.CustomerID != customerID {
			return models.ErrMethodNotOwned
		}

		paymentID, adopted, err = is.payInstallment(ctx, saleID, installmentID, amount, methodID, denomination)
		if err != nil {
			return err
		}

		status, err = is.sales.GetSaleStatus(ctx, saleID)
		if errors.Is(err, models.ErrDataNotFound) {
			status = models.SaleStatusPending
			return nil
		}
		return err
	})
	if err != nil {
		return 0, "", err
	}

	// an adopted payment was already announced by the submission that won
	if !adopted {
		is.events.PaymentRegistered(events.PaymentEvent{
			SaleID:       saleID,
			PaymentID:    paymentID,
			CustomerID:   customerID,
			Amount:       amount,
			Denomination: denomination,
			FinalStatus:  status,
		})
	}

	return paymentID, status, nil
}

func (is *InstallmentService) payInstallment(ctx context.Context, saleID, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, bool, error) {
	paymentID, err := is.installments.PayInstallment(ctx, installmentID, amount, methodID, denomination)
	if err == nil {
		return paymentID, false, nil
	}
	if !errors.Is(err, models.ErrInstallmentPaid) {
		return 0, false, err
	}

	cur, err := is.installments.GetInstallment(ctx, installmentID)
	if err != nil {
		return 0, false, err
	}
	if !cur.Paid {
		return 0, false, fmt.Errorf("no se pudo pagar la cuota %d", installmentID)
	}

	payment, err := is.payments.LatestPayment(ctx, saleID, time.Now().Add(-time.Hour))
	if err != nil {
		return 0, false, err
	}

	return payment.ID, true, nil
}
