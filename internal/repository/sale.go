package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/maborges/travelmart/internal/models"
	"github.com/maborges/travelmart/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	selectActiveSaleQuery = `
						SELECT v.id, v.id_cliente, v.monto_total, ev.estado, v.creado_en
						FROM ventas v
						JOIN estados_venta ev ON ev.id_venta = v.id AND ev.activo
						WHERE v.id = $1
`
	selectSaleStatusQuery = `
						SELECT estado FROM estados_venta
						WHERE id_venta = $1 AND activo
`
)

// SaleRepository implements SaleRepository interface
type SaleRepository struct {
	db *postgres.DB
}

// NewSaleRepository creates new SaleRepository instance
func NewSaleRepository(db *postgres.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// GetActiveSale returns the sale with its current active status
func (sr *SaleRepository) GetActiveSale(ctx context.Context, saleID uint64) (*models.Sale, error) {
	sale := models.Sale{}
	err := sr.db.QueryRow(ctx, selectActiveSaleQuery, saleID).Scan(&sale.ID, &sale.CustomerID, &sale.Total, &sale.Status, &sale.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &sale, nil
}

// GetSaleStatus returns the sale's current active status
func (sr *SaleRepository) GetSaleStatus(ctx context.Context, saleID uint64) (string, error) {
	var status string
	err := sr.db.QueryRow(ctx, selectSaleStatusQuery, saleID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrDataNotFound
		}
		return "", err
	}

	return status, nil
}
