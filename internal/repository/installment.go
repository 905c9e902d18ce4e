package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/maborges/travelmart/internal/models"
	"github.com/maborges/travelmart/internal/repository/postgres"
)

const (
	createPlanQuery     = `SELECT agregar_cuotas($1, $2, $3)`
	payInstallmentQuery = `SELECT pagar_cuota($1, $2, $3, $4)`

	selectFirstInstallmentQuery = `
						SELECT c.id, c.id_plan, c.numero, c.monto, c.pagada, c.vence_en, c.pagada_en
						FROM cuotas c
						JOIN planes_cuotas pc ON pc.id = c.id_plan
						WHERE pc.id_venta = $1
						ORDER BY c.numero
						LIMIT 1
`
	selectInstallmentQuery = `
						SELECT id, id_plan, numero, monto, pagada, vence_en, pagada_en FROM cuotas
						WHERE id = $1
`
	selectInstallmentsBySaleQuery = `
						SELECT c.id, c.id_plan, c.numero, c.monto, c.pagada, c.vence_en, c.pagada_en
						FROM cuotas c
						JOIN planes_cuotas pc ON pc.id = c.id_plan
						WHERE pc.id_venta = $1
						ORDER BY c.numero
`
	selectInstallmentSaleQuery = `
						SELECT v.id, v.id_cliente
						FROM cuotas c
						JOIN planes_cuotas pc ON pc.id = c.id_plan
						JOIN ventas v ON v.id = pc.id_venta
						WHERE c.id = $1
`
)

// InstallmentRepository implements InstallmentRepository interface
type InstallmentRepository struct {
	db *postgres.DB
}

// NewInstallmentRepository creates new InstallmentRepository instance
func NewInstallmentRepository(db *postgres.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// CreatePlan calls agregar_cuotas to generate the amortized schedule
func (ir *InstallmentRepository) CreatePlan(ctx context.Context, saleID uint64, rate float64, count int) (uint64, error) {
	var id uint64
	err := ir.db.QueryRow(ctx, createPlanQuery, saleID, rate, count).Scan(&id)
	if err != nil {
		if errCode := ir.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return 0, models.ErrConflictData
		}
		return 0, err
	}

	return id, nil
}

// FirstInstallment returns the sale's earliest installment by generation order
func (ir *InstallmentRepository) FirstInstallment(ctx context.Context, saleID uint64) (*models.Installment, error) {
	return ir.scanInstallment(ir.db.QueryRow(ctx, selectFirstInstallmentQuery, saleID))
}

// GetInstallment returns an installment by id
func (ir *InstallmentRepository) GetInstallment(ctx context.Context, installmentID uint64) (*models.Installment, error) {
	return ir.scanInstallment(ir.db.QueryRow(ctx, selectInstallmentQuery, installmentID))
}

// GetInstallmentsBySale returns the sale's full schedule
func (ir *InstallmentRepository) GetInstallmentsBySale(ctx context.Context, saleID uint64) ([]models.Installment, error) {
	rows, err := ir.db.Query(ctx, selectInstallmentsBySaleQuery, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	installments := []models.Installment{}

	for rows.Next() {
		inst := models.Installment{}
		err = rows.Scan(&inst.ID, &inst.PlanID, &inst.Number, &inst.Amount, &inst.Paid, &inst.DueAt, &inst.PaidAt)
		if err != nil {
			continue
		}
		installments = append(installments, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return installments, nil
}

// GetInstallmentSale returns the sale id and owning customer of an installment
func (ir *InstallmentRepository) GetInstallmentSale(ctx context.Context, installmentID uint64) (saleID uint64, customerID uint64, err error) {
	err = ir.db.QueryRow(ctx, selectInstallmentSaleQuery, installmentID).Scan(&saleID, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, models.ErrDataNotFound
		}
		return 0, 0, err
	}

	return saleID, customerID, nil
}

// PayInstallment calls pagar_cuota. The routine flips the paid flag only
// when it is still unset; a NULL result means the installment was already
// paid and is reported as models.ErrInstallmentPaid.
func (ir *InstallmentRepository) PayInstallment(ctx context.Context, installmentID uint64, amount float64, methodID uint64, denomination string) (uint64, error) {
	var id *uint64
	err := ir.db.QueryRow(ctx, payInstallmentQuery, installmentID, amount, methodID, denomination).Scan(&id)
	if err != nil {
		return 0, err
	}

	if id == nil {
		return 0, models.ErrInstallmentPaid
	}

	return *id, nil
}

func (ir *InstallmentRepository) scanInstallment(row pgx.Row) (*models.Installment, error) {
	inst := models.Installment{}
	err := row.Scan(&inst.ID, &inst.PlanID, &inst.Number, &inst.Amount, &inst.Paid, &inst.DueAt, &inst.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &inst, nil
}
