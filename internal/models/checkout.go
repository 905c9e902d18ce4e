package models

// PlanRequest asks for an installment plan on a sale
type PlanRequest struct {
	Count int
	Rate  float64
}

// SaleCheckout is one sale's payment instruction within a checkout batch
type SaleCheckout struct {
	SaleID       uint64
	MethodType   string
	MethodData   PaymentMethodData
	Amount       float64
	Denomination string
	Plan         *PlanRequest
	UseMiles     int64
}

// SaleResult is the per-sale outcome of a checkout batch
type SaleResult struct {
	SaleID      uint64
	Success     bool
	PaymentID   uint64
	FinalStatus string
	Err         string
}

// CheckoutResult aggregates the outcomes of one checkout batch
type CheckoutResult struct {
	Results   []SaleResult
	Succeeded int
	Failed    int
}
