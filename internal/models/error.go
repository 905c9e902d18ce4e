package models

import (
	"errors"
	"fmt"
)

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserExists         = errors.New("user already exists")
	ErrInternalError      = errors.New("internal error")
)

// checkout errors; their text is what the caller sees in resultados[].error
var (
	ErrSaleNotFound         = errors.New("venta no encontrada")
	ErrSaleNotOwned         = errors.New("la venta no pertenece al cliente autenticado")
	ErrNoMileageAccount     = errors.New("el cliente no tiene cuenta de millas")
	ErrUnsupportedMethod    = errors.New("Método de pago no soportado")
	ErrInvalidCardNumber    = errors.New("número de tarjeta inválido")
	ErrInstallmentPaid      = errors.New("la cuota ya fue pagada")
	ErrMethodNotOwned       = errors.New("el método de pago no pertenece al cliente")
	ErrPaymentNotRegistered = errors.New("el pago no pudo ser registrado")
	ErrInvalidMilesQuantity = errors.New("la cantidad de millas debe ser mayor que cero")
	ErrNegativeAmount       = errors.New("el monto de pago no puede ser negativo")
)

// SaleStateError reports a sale whose active status is not pending
type SaleStateError struct {
	SaleID uint64
	Status string
}

func (e SaleStateError) Error() string {
	return fmt.Sprintf("la venta %d no está pendiente (estado actual: %s)", e.SaleID, e.Status)
}

// MilesBalanceError reports a miles redemption over the available balance
type MilesBalanceError struct {
	Available int64
	Requested int64
}

func (e MilesBalanceError) Error() string {
	return fmt.Sprintf("millas insuficientes: disponibles %d, solicitadas %d", e.Available, e.Requested)
}

// MethodFieldError reports a missing required payment-method field
type MethodFieldError struct {
	Field string
}

func (e MethodFieldError) Error() string {
	return fmt.Sprintf("falta el campo requerido: %s", e.Field)
}
