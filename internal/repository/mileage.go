package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maborges/travelmart/internal/models"
	"github.com/maborges/travelmart/internal/repository/postgres"
)

const (
	selectMileageAccountQuery = `
						SELECT id, id_cliente, COALESCE(saldo_millas, 0) FROM metodos_pago
						WHERE id_cliente = $1 AND tipo = 'millas'
`
	selectMilesByMethodQuery = `
						SELECT COALESCE(saldo_millas, 0) FROM metodos_pago
						WHERE id = $1
`
	debitMilesQuery = `
						UPDATE metodos_pago SET saldo_millas = saldo_millas - $2
						WHERE id = $1 AND tipo = 'millas' AND saldo_millas >= $2
`
	insertMovementQuery = `
						INSERT INTO millas_movimientos (id_metodo, id_venta, cantidad, descripcion, referencia)
						values ($1, $2, $3, $4, $5)
						RETURNING id
`
)

// MileageRepository implements MileageRepository interface
type MileageRepository struct {
	db *postgres.DB
}

// NewMileageRepository creates new MileageRepository instance
func NewMileageRepository(db *postgres.DB) *MileageRepository {
	return &MileageRepository{db: db}
}

// GetAccount returns the customer's standing mileage account
func (mr *MileageRepository) GetAccount(ctx context.Context, customerID uint64) (*models.MileageAccount, error) {
	account := models.MileageAccount{}
	err := mr.db.QueryRow(ctx, selectMileageAccountQuery, customerID).Scan(&account.MethodID, &account.CustomerID, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &account, nil
}

// Debit decrements the miles balance and appends the ledger entry.
// The update is guarded on the balance, so a concurrent redemption that
// drains the account surfaces as MilesBalanceError instead of going negative.
func (mr *MileageRepository) Debit(ctx context.Context, methodID, saleID uint64, quantity int64) error {
	cmd, err := mr.db.Exec(ctx, debitMilesQuery, methodID, quantity)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		var balance int64
		err := mr.db.QueryRow(ctx, selectMilesByMethodQuery, methodID).Scan(&balance)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrDataNotFound
		}
		if err != nil {
			return err
		}
		return models.MilesBalanceError{Available: balance, Requested: quantity}
	}

	description := fmt.Sprintf("pago de venta %d con millas", saleID)

	var movementID uint64
	return mr.db.QueryRow(ctx, insertMovementQuery, methodID, saleID, -quantity, description, uuid.NewString()).Scan(&movementID)
}
