package models

import "time"

// MileageAccount is a customer's standing miles balance, stored as the
// single mileage-type payment method of the customer
type MileageAccount struct {
	MethodID   uint64
	CustomerID uint64
	Balance    int64
}

// MileageMovement is one ledger entry of a mileage account
type MileageMovement struct {
	ID          uint64
	MethodID    uint64
	SaleID      uint64
	Quantity    int64
	Description string
	Reference   string
	CreatedAt   time.Time
}
