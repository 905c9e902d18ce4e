package service

import (
	"context"
	"time"

	"github.com/maborges/travelmart/internal/events"
	"github.com/maborges/travelmart/internal/models"
)

// in-memory repository fakes shared by the service tests

type fakeSales struct {
	sales  map[uint64]*models.Sale
	status map[uint64]string
}

func (f *fakeSales) GetActiveSale(_ context.Context, saleID uint64) (*models.Sale, error) {
	sale, ok := f.sales[saleID]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	cp := *sale
	return &cp, nil
}

func (f *fakeSales) GetSaleStatus(_ context.Context, saleID uint64) (string, error) {
	status, ok := f.status[saleID]
	if !ok {
		return "", models.ErrDataNotFound
	}
	return status, nil
}

type fakePayments struct {
	nextID      uint64
	methods     []*models.PaymentMethod
	payments    []*models.Payment
	registerErr error

	// panicOnSale makes RegisterPayment panic for that sale
	panicOnSale uint64
}

func (f *fakePayments) CreateMethod(_ context.Context, method *models.PaymentMethod) (uint64, error) {
	f.nextID++
	method.ID = f.nextID
	f.methods = append(f.methods, method)
	return method.ID, nil
}

func (f *fakePayments) GetMethod(_ context.Context, methodID uint64) (*models.PaymentMethod, error) {
	for _, m := range f.methods {
		if m.ID == methodID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, models.ErrDataNotFound
}

func (f *fakePayments) RegisterPayment(_ context.Context, saleID, methodID uint64, amount float64, denomination string) (uint64, error) {
	if f.panicOnSale != 0 && f.panicOnSale == saleID {
		panic("payment store failure")
	}
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	f.nextID++
	f.payments = append(f.payments, &models.Payment{
		ID:           f.nextID,
		SaleID:       saleID,
		MethodID:     methodID,
		Amount:       amount,
		Denomination: denomination,
		CreatedAt:    time.Now(),
	})
	return f.nextID, nil
}

func (f *fakePayments) LatestPayment(_ context.Context, saleID uint64, since time.Time) (*models.Payment, error) {
	for i := len(f.payments) - 1; i >= 0; i-- {
		p := f.payments[i]
		if p.SaleID == saleID && !p.CreatedAt.Before(since) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrDataNotFound
}

type installmentSale struct {
	saleID     uint64
	customerID uint64
}

type fakeInstallments struct {
	payments     *fakePayments
	nextID       uint64
	plans        map[uint64]uint64 // saleID -> planID
	installments map[uint64]*models.Installment
	firstBySale  map[uint64]uint64
	sales        map[uint64]installmentSale // installmentID -> owner

	// forceAlreadyPaid makes PayInstallment lose the CAS and GetInstallment
	// report the installment as paid
	forceAlreadyPaid bool
}

func newFakeInstallments(payments *fakePayments) *fakeInstallments {
	return &fakeInstallments{
		payments:     payments,
		plans:        map[uint64]uint64{},
		installments: map[uint64]*models.Installment{},
		firstBySale:  map[uint64]uint64{},
		sales:        map[uint64]installmentSale{},
	}
}

func (f *fakeInstallments) CreatePlan(_ context.Context, saleID uint64, rate float64, count int) (uint64, error) {
	if _, ok := f.plans[saleID]; ok {
		return 0, models.ErrConflictData
	}

	f.nextID++
	planID := f.nextID
	f.plans[saleID] = planID

	for i := 1; i <= count; i++ {
		f.nextID++
		inst := &models.Installment{
			ID:     f.nextID,
			PlanID: planID,
			Number: i,
			Amount: 0,
			DueAt:  time.Now().AddDate(0, i, 0),
		}
		f.installments[inst.ID] = inst
		f.sales[inst.ID] = installmentSale{saleID: saleID}
		if i == 1 {
			f.firstBySale[saleID] = inst.ID
		}
	}

	return planID, nil
}

func (f *fakeInstallments) FirstInstallment(ctx context.Context, saleID uint64) (*models.Installment, error) {
	id, ok := f.firstBySale[saleID]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	return f.GetInstallment(ctx, id)
}

func (f *fakeInstallments) GetInstallment(_ context.Context, installmentID uint64) (*models.Installment, error) {
	inst, ok := f.installments[installmentID]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	cp := *inst
	if f.forceAlreadyPaid {
		cp.Paid = true
	}
	return &cp, nil
}

func (f *fakeInstallments) GetInstallmentsBySale(_ context.Context, saleID uint64) ([]models.Installment, error) {
	planID, ok := f.plans[saleID]
	if !ok {
		return []models.Installment{}, nil
	}

	out := []models.Installment{}
	for _, inst := range f.installments {
		if inst.PlanID == planID {
			out = append(out, *inst)
		}
	}
	return out, nil
}

func (f *fakeInstallments) GetInstallmentSale(_ context.Context, installmentID uint64) (uint64, uint64, error) {
	owner, ok := f.sales[installmentID]
	if !ok {
		return 0, 0, models.ErrDataNotFound
	}
	return owner.saleID, owner.customerID, nil
}

func (f *fakeInstallments) PayInstallment(ctx context.Context, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, error) {
	inst, ok := f.installments[installmentID]
	if !ok {
		return 0, models.ErrDataNotFound
	}
	if inst.Paid || f.forceAlreadyPaid {
		return 0, models.ErrInstallmentPaid
	}

	inst.Paid = true
	now := time.Now()
	inst.PaidAt = &now

	return f.payments.RegisterPayment(ctx, f.sales[installmentID].saleID, methodID, amount, denomination)
}

type fakeMileage struct {
	account   *models.MileageAccount
	movements []models.MileageMovement
}

func (f *fakeMileage) GetAccount(_ context.Context, customerID uint64) (*models.MileageAccount, error) {
	if f.account == nil || f.account.CustomerID != customerID {
		return nil, models.ErrDataNotFound
	}
	cp := *f.account
	return &cp, nil
}

func (f *fakeMileage) Debit(_ context.Context, methodID, saleID uint64, quantity int64) error {
	if f.account == nil || f.account.MethodID != methodID {
		return models.ErrDataNotFound
	}
	if quantity > f.account.Balance {
		return models.MilesBalanceError{Available: f.account.Balance, Requested: quantity}
	}
	f.account.Balance -= quantity
	f.movements = append(f.movements, models.MileageMovement{
		MethodID: methodID,
		SaleID:   saleID,
		Quantity: -quantity,
	})
	return nil
}

type fakeTx struct{}

func (fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// trackingTx counts transactions that were begun but never released,
// mirroring the runner's contract that a panic in fn must not leak one
type trackingTx struct {
	open int
}

func (t *trackingTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.open++
	defer func() { t.open-- }()
	return fn(ctx)
}

type fakeEvents struct {
	published []events.PaymentEvent
}

func (f *fakeEvents) PaymentRegistered(event events.PaymentEvent) {
	f.published = append(f.published, event)
}
