package models

import "time"

// payment method type tags as they arrive on the wire
const (
	MethodCard    = "tarjeta"
	MethodDeposit = "deposito"
	MethodWallet  = "billetera"
	MethodCheck   = "cheque"
	MethodCrypto  = "cripto"
	MethodMileage = "millas"
)

type CardData struct {
	Number       string
	Holder       string
	SecurityCode string
	Expiry       string
	Issuer       string
	BankRef      string
}

type DepositData struct {
	Reference string
	Account   string
	BankRef   string
}

type WalletData struct {
	Confirmation string
	Provider     string
	BankRef      string
}

type CheckData struct {
	Number      string
	AccountCode string
	BankRef     string
}

type CryptoData struct {
	Currency string
	Address  string
}

// PaymentMethod is one typed payment method owned by a customer.
// Exactly one of the variant pointers is set, matching Type.
type PaymentMethod struct {
	ID           uint64
	CustomerID   uint64
	Type         string
	Card         *CardData
	Deposit      *DepositData
	Wallet       *WalletData
	Check        *CheckData
	Crypto       *CryptoData
	MilesBalance int64
	CreatedAt    time.Time
}

// Payment is one monetary transaction against a sale
type Payment struct {
	ID           uint64
	SaleID       uint64
	MethodID     uint64
	Amount       float64
	Denomination string
	CreatedAt    time.Time
}

// PaymentMethodData carries the type-specific fields of datos_metodo_pago
// as they arrive on the wire. Only the fields of the tagged type are read.
type PaymentMethodData struct {
	CardNumber   string `json:"numero_tarjeta,omitempty"`
	CardHolder   string `json:"titular,omitempty"`
	SecurityCode string `json:"codigo_seguridad,omitempty"`
	Expiry       string `json:"fecha_vencimiento,omitempty"`
	Issuer       string `json:"emisor,omitempty"`
	BankRef      string `json:"referencia_bancaria,omitempty"`
	Reference    string `json:"numero_referencia,omitempty"`
	Account      string `json:"cuenta_destino,omitempty"`
	Confirmation string `json:"numero_confirmacion,omitempty"`
	Provider     string `json:"proveedor_billetera,omitempty"`
	CheckNumber  string `json:"numero_cheque,omitempty"`
	AccountCode  string `json:"codigo_cuenta,omitempty"`
	CryptoName   string `json:"moneda,omitempty"`
	CryptoWallet string `json:"direccion_billetera,omitempty"`

	// secondary method for combined miles + money payments
	Secondary *SecondaryMethod `json:"metodo_secundario,omitempty"`
}

// SecondaryMethod is the payload of the method covering the residual
// amount when a payment combines miles with money
type SecondaryMethod struct {
	Type string            `json:"metodo_pago"`
	Data PaymentMethodData `json:"datos"`
}
