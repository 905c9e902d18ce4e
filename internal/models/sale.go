package models

import "time"

//pendiente — la venta espera pagos que cubran el total;
//pagada — los pagos registrados cubren el monto total;
//cancelada — la venta fue anulada antes de completarse.

// sale status as kept in the active row of estados_venta
const (
	SaleStatusPending   = "pendiente"
	SaleStatusPaid      = "pagada"
	SaleStatusCancelled = "cancelada"
)

// Sale is a customer's purchase record. Status is derived by the database
// from the sum of registered payments, never set by the application.
type Sale struct {
	ID         uint64
	CustomerID uint64
	Total      float64
	Status     string
	CreatedAt  time.Time
}
