package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/maborges/travelmart/internal/models"
	"github.com/maborges/travelmart/internal/repository/postgres"
)

const (
	registerPaymentQuery = `SELECT registrar_pago($1, $2, $3, $4)`

	selectLatestPaymentQuery = `
						SELECT id, id_venta, id_metodo, monto, denominacion, creado_en FROM pagos
						WHERE id_venta = $1 AND creado_en >= $2
						ORDER BY creado_en DESC, id DESC
						LIMIT 1
`
	selectMethodQuery = `
						SELECT id, id_cliente, tipo, COALESCE(saldo_millas, 0), creado_en FROM metodos_pago
						WHERE id = $1
`
	insertCardMethodQuery = `
						INSERT INTO metodos_pago (id_cliente, tipo, numero_tarjeta, titular, codigo_seguridad, fecha_vencimiento, emisor, referencia_bancaria)
						values ($1, 'tarjeta', $2, $3, $4, $5, $6, $7)
						RETURNING id
`
	insertDepositMethodQuery = `
						INSERT INTO metodos_pago (id_cliente, tipo, numero_referencia, cuenta_destino, referencia_bancaria)
						values ($1, 'deposito', $2, $3, $4)
						RETURNING id
`
	insertWalletMethodQuery = `
						INSERT INTO metodos_pago (id_cliente, tipo, numero_confirmacion, proveedor_billetera, referencia_bancaria)
						values ($1, 'billetera', $2, $3, $4)
						RETURNING id
`
	insertCheckMethodQuery = `
						INSERT INTO metodos_pago (id_cliente, tipo, numero_cheque, codigo_cuenta, referencia_bancaria)
						values ($1, 'cheque', $2, $3, $4)
						RETURNING id
`
	insertCryptoMethodQuery = `
						INSERT INTO metodos_pago (id_cliente, tipo, moneda, direccion_billetera)
						values ($1, 'cripto', $2, $3)
						RETURNING id
`
)

// PaymentRepository implements PaymentRepository interface
type PaymentRepository struct {
	db *postgres.DB
}

// NewPaymentRepository creates new PaymentRepository instance
func NewPaymentRepository(db *postgres.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateMethod inserts the payment-method record of the method's type
func (pr *PaymentRepository) CreateMethod(ctx context.Context, method *models.PaymentMethod) (uint64, error) {
	var row pgx.Row

	switch method.Type {
	case models.MethodCard:
		c := method.Card
		row = pr.db.QueryRow(ctx, insertCardMethodQuery, method.CustomerID, c.Number, c.Holder, c.SecurityCode, c.Expiry, c.Issuer, c.BankRef)
	case models.MethodDeposit:
		d := method.Deposit
		row = pr.db.QueryRow(ctx, insertDepositMethodQuery, method.CustomerID, d.Reference, d.Account, d.BankRef)
	case models.MethodWallet:
		w := method.Wallet
		row = pr.db.QueryRow(ctx, insertWalletMethodQuery, method.CustomerID, w.Confirmation, w.Provider, w.BankRef)
	case models.MethodCheck:
		c := method.Check
		row = pr.db.QueryRow(ctx, insertCheckMethodQuery, method.CustomerID, c.Number, c.AccountCode, c.BankRef)
	case models.MethodCrypto:
		c := method.Crypto
		row = pr.db.QueryRow(ctx, insertCryptoMethodQuery, method.CustomerID, c.Currency, c.Address)
	default:
		return 0, fmt.Errorf("create method: unknown type %q", method.Type)
	}

	var id uint64
	if err := row.Scan(&id); err != nil {
		if errCode := pr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return 0, models.ErrConflictData
		}
		return 0, err
	}

	return id, nil
}

// GetMethod returns a payment method by id
func (pr *PaymentRepository) GetMethod(ctx context.Context, methodID uint64) (*models.PaymentMethod, error) {
	method := models.PaymentMethod{}
	err := pr.db.QueryRow(ctx, selectMethodQuery, methodID).Scan(&method.ID, &method.CustomerID, &method.Type, &method.MilesBalance, &method.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &method, nil
}

// RegisterPayment calls registrar_pago and returns the new payment id.
// The routine also advances the sale status when the total is covered.
func (pr *PaymentRepository) RegisterPayment(ctx context.Context, saleID, methodID uint64, amount float64, denomination string) (uint64, error) {
	var id *uint64
	err := pr.db.QueryRow(ctx, registerPaymentQuery, saleID, methodID, amount, denomination).Scan(&id)
	if err != nil {
		return 0, err
	}

	if id == nil {
		return 0, models.ErrPaymentNotRegistered
	}

	return *id, nil
}

// LatestPayment returns the most recent payment of the sale registered at
// or after since
func (pr *PaymentRepository) LatestPayment(ctx context.Context, saleID uint64, since time.Time) (*models.Payment, error) {
	payment := models.Payment{}
	err := pr.db.QueryRow(ctx, selectLatestPaymentQuery, saleID, since).Scan(&payment.ID, &payment.SaleID, &payment.MethodID, &payment.Amount, &payment.Denomination, &payment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}
