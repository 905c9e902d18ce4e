package models

import "time"

// Installment is one scheduled payment of a plan. It can be marked paid
// at most once.
type Installment struct {
	ID     uint64
	PlanID uint64
	Number int
	Amount float64
	Paid   bool
	DueAt  time.Time
	PaidAt *time.Time
}
