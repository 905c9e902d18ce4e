package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maborges/travelmart/internal/events"
	"github.com/maborges/travelmart/internal/logger"
	"github.com/maborges/travelmart/internal/models"
	"go.uber.org/zap"
)

// SaleRepository is interface for interacting with sale-related data
type SaleRepository interface {
	// GetActiveSale returns the sale with its current active status
	GetActiveSale(ctx context.Context, saleID uint64) (*models.Sale, error)
	// GetSaleStatus returns the sale's current active status
	GetSaleStatus(ctx context.Context, saleID uint64) (string, error)
}

// PaymentRepository is interface for interacting with payments and methods
type PaymentRepository interface {
	// CreateMethod inserts the payment-method record of the method's type
	CreateMethod(ctx context.Context, method *models.PaymentMethod) (uint64, error)
	// GetMethod returns a payment method by id
	GetMethod(ctx context.Context, methodID uint64) (*models.PaymentMethod, error)
	// RegisterPayment registers one payment and returns its id
	RegisterPayment(ctx context.Context, saleID, methodID uint64, amount float64, denomination string) (uint64, error)
	// LatestPayment returns the sale's most recent payment since the given time
	LatestPayment(ctx context.Context, saleID uint64, since time.Time) (*models.Payment, error)
}

// InstallmentRepository is interface for interacting with installment plans
type InstallmentRepository interface {
	// CreatePlan generates the amortized schedule for a sale
	CreatePlan(ctx context.Context, saleID uint64, rate float64, count int) (uint64, error)
	// FirstInstallment returns the sale's earliest installment
	FirstInstallment(ctx context.Context, saleID uint64) (*models.Installment, error)
	// GetInstallment returns an installment by id
	GetInstallment(ctx context.Context, installmentID uint64) (*models.Installment, error)
	// GetInstallmentsBySale returns the sale's full schedule
	GetInstallmentsBySale(ctx context.Context, saleID uint64) ([]models.Installment, error)
	// GetInstallmentSale returns the sale id and owning customer of an installment
	GetInstallmentSale(ctx context.Context, installmentID uint64) (saleID uint64, customerID uint64, err error)
	// PayInstallment marks one installment paid exactly once; returns
	// models.ErrInstallmentPaid when it already was
	PayInstallment(ctx context.Context, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, error)
}

// MileageRepository is interface for interacting with mileage accounts
type MileageRepository interface {
	// GetAccount returns the customer's standing mileage account
	GetAccount(ctx context.Context, customerID uint64) (*models.MileageAccount, error)
	// Debit decrements the balance and appends the ledger entry
	Debit(ctx context.Context, methodID, saleID uint64, quantity int64) error
}

// TxRunner runs a function inside one database transaction
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits payment events after commit
type EventPublisher interface {
	PaymentRegistered(event events.PaymentEvent)
}

// CheckoutService orchestrates the per-sale payment sequence of a
// checkout batch
type CheckoutService struct {
	sales        SaleRepository
	payments     PaymentRepository
	installments InstallmentRepository
	mileage      MileageRepository
	tx           TxRunner
	events       EventPublisher
}

// NewCheckoutService creates new CheckoutService instance
func NewCheckoutService(sales SaleRepository, payments PaymentRepository, installments InstallmentRepository, mileage MileageRepository, tx TxRunner, events EventPublisher) *CheckoutService {
	return &CheckoutService{
		sales:        sales,
		payments:     payments,
		installments: installments,
		mileage:      mileage,
		tx:           tx,
		events:       events,
	}
}

// Checkout processes the batch strictly in order. One sale's failure
// never aborts the remaining sales.
func (cs *CheckoutService) Checkout(ctx context.Context, customerID uint64, requests []models.SaleCheckout) models.CheckoutResult {
	result := models.CheckoutResult{}

	for _, req := range requests {
		res := cs.processSale(ctx, customerID, req)
		if res.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, res)
	}

	return result
}

// processSale runs one sale's full payment sequence inside a transaction.
// Neither an error nor a panic escapes: both become the sale's result.
func (cs *CheckoutService) processSale(ctx context.Context, customerID uint64, req models.SaleCheckout) (res models.SaleResult) {
	res = models.SaleResult{SaleID: req.SaleID}

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("checkout panic", zap.Uint64("venta", req.SaleID), zap.Any("panic", r))
			res.Success = false
			res.PaymentID = 0
			res.FinalStatus = ""
			res.Err = "error interno procesando la venta"
		}
	}()

	var paymentID uint64
	var adopted bool
	var status string

	err := cs.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		paymentID, adopted, err = cs.paySale(ctx, customerID, req)
		if err != nil {
			return err
		}

		status, err = cs.finalStatus(ctx, req.SaleID)
		return err
	})
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.Success = true
	res.PaymentID = paymentID
	res.FinalStatus = status

	// an adopted payment was already announced by the submission that won
	if !adopted {
		cs.events.PaymentRegistered(events.PaymentEvent{
			SaleID:       req.SaleID,
			PaymentID:    paymentID,
			CustomerID:   customerID,
			Amount:       req.Amount,
			Denomination: req.Denomination,
			FinalStatus:  status,
		})
	}

	return res
}

func (cs *CheckoutService) paySale(ctx context.Context, customerID uint64, req models.SaleCheckout) (uint64, bool, error) {
	sale, err := cs.sales.GetActiveSale(ctx, req.SaleID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return 0, false, models.ErrSaleNotFound
		}
		return 0, false, err
	}

	if sale.CustomerID != customerID {
		return 0, false, models.ErrSaleNotOwned
	}
	if sale.Status != models.SaleStatusPending {
		return 0, false, models.SaleStateError{SaleID: sale.ID, Status: sale.Status}
	}
	if req.Amount < 0 {
		return 0, false, models.ErrNegativeAmount
	}

	methodID, err := cs.resolveMethod(ctx, customerID, req)
	if err != nil {
		return 0, false, err
	}

	if req.Plan != nil && req.Plan.Count > 1 {
		return cs.payFirstInstallment(ctx, req, methodID)
	}

	paymentID, err := cs.payments.RegisterPayment(ctx, req.SaleID, methodID, req.Amount, req.Denomination)
	if err != nil {
		return 0, false, err
	}
	if paymentID == 0 {
		return 0, false, models.ErrPaymentNotRegistered
	}

	return paymentID, false, nil
}

// resolveMethod yields the payment-method id the payment is registered
// against: the standing mileage account, a newly created method, or the
// secondary method of a combined miles + money payment.
func (cs *CheckoutService) resolveMethod(ctx context.Context, customerID uint64, req models.SaleCheckout) (uint64, error) {
	if req.MethodType != models.MethodMileage {
		method, err := buildPaymentMethod(customerID, req.MethodType, req.MethodData)
		if err != nil {
			return 0, err
		}
		return cs.payments.CreateMethod(ctx, method)
	}

	// a non-positive quantity would turn the debit into a credit
	if req.UseMiles <= 0 {
		return 0, models.ErrInvalidMilesQuantity
	}

	account, err := cs.mileage.GetAccount(ctx, customerID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return 0, models.ErrNoMileageAccount
		}
		return 0, err
	}

	if req.UseMiles > account.Balance {
		return 0, models.MilesBalanceError{Available: account.Balance, Requested: req.UseMiles}
	}

	if err := cs.mileage.Debit(ctx, account.MethodID, req.SaleID, req.UseMiles); err != nil {
		return 0, err
	}

	// the residual amount of a combined payment goes through the
	// secondary method
	if sec := req.MethodData.Secondary; sec != nil && req.Amount > 0 {
		method, err := buildPaymentMethod(customerID, sec.Type, sec.Data)
		if err != nil {
			return 0, err
		}
		return cs.payments.CreateMethod(ctx, method)
	}

	return account.MethodID, nil
}

// payFirstInstallment creates the plan and pays its first installment.
// The returned flag reports an adopted payment: one registered by a
// concurrent submission that won the paid-flag race.
func (cs *CheckoutService) payFirstInstallment(ctx context.Context, req models.SaleCheckout, methodID uint64) (uint64, bool, error) {
	if _, err := cs.installments.CreatePlan(ctx, req.SaleID, req.Plan.Rate, req.Plan.Count); err != nil {
		return 0, false, err
	}

	first, err := cs.installments.FirstInstallment(ctx, req.SaleID)
	if err != nil {
		return 0, false, err
	}

	_, err = cs.installments.PayInstallment(ctx, first.ID, req.Amount, methodID, req.Denomination)
	if err != nil {
		if !errors.Is(err, models.ErrInstallmentPaid) {
			return 0, false, err
		}

		// a concurrent submission paid it first: adopt that payment
		cur, err := cs.installments.GetInstallment(ctx, first.ID)
		if err != nil {
			return 0, false, err
		}
		if !cur.Paid {
			return 0, false, fmt.Errorf("no se pudo pagar la cuota %d", first.ID)
		}

		payment, err := cs.payments.LatestPayment(ctx, req.SaleID, time.Now().Add(-time.Hour))
		if err != nil {
			return 0, false, err
		}
		return payment.ID, true, nil
	}

	payment, err := cs.payments.LatestPayment(ctx, req.SaleID, time.Now().Add(-time.Minute))
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return 0, false, models.ErrPaymentNotRegistered
		}
		return 0, false, err
	}

	return payment.ID, false, nil
}

// finalStatus re-reads the sale status; transitions are computed by the
// database when payments are registered, never set here
func (cs *CheckoutService) finalStatus(ctx context.Context, saleID uint64) (string, error) {
	status, err := cs.sales.GetSaleStatus(ctx, saleID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return models.SaleStatusPending, nil
		}
		return "", err
	}

	return status, nil
}
