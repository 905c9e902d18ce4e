package service

import (
	"strconv"
	"strings"

	"github.com/maborges/travelmart/internal/models"
	"github.com/phedde/luhn-algorithm"
)

// buildPaymentMethod validates the type-specific payload and returns the
// method variant to create. Unknown tags and missing required fields are
// validation errors; nothing is persisted here.
func buildPaymentMethod(customerID uint64, methodType string, data models.PaymentMethodData) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{CustomerID: customerID, Type: methodType}

	switch methodType {
	case models.MethodCard:
		if data.CardNumber == "" {
			return nil, models.MethodFieldError{Field: "numero_tarjeta"}
		}
		if data.CardHolder == "" {
			return nil, models.MethodFieldError{Field: "titular"}
		}

		// check card number using Luhn algorithm
		num, err := strconv.ParseInt(strings.ReplaceAll(data.CardNumber, " ", ""), 10, 64)
		if err != nil {
			return nil, models.ErrInvalidCardNumber
		}
		if ok := luhn.IsValid(num); !ok {
			return nil, models.ErrInvalidCardNumber
		}

		method.Card = &models.CardData{
			Number:       data.CardNumber,
			Holder:       data.CardHolder,
			SecurityCode: data.SecurityCode,
			Expiry:       data.Expiry,
			Issuer:       data.Issuer,
			BankRef:      data.BankRef,
		}

	case models.MethodDeposit:
		if data.Reference == "" {
			return nil, models.MethodFieldError{Field: "numero_referencia"}
		}
		method.Deposit = &models.DepositData{
			Reference: data.Reference,
			Account:   data.Account,
			BankRef:   data.BankRef,
		}

	case models.MethodWallet:
		if data.Confirmation == "" {
			return nil, models.MethodFieldError{Field: "numero_confirmacion"}
		}
		method.Wallet = &models.WalletData{
			Confirmation: data.Confirmation,
			Provider:     data.Provider,
			BankRef:      data.BankRef,
		}

	case models.MethodCheck:
		if data.CheckNumber == "" {
			return nil, models.MethodFieldError{Field: "numero_cheque"}
		}
		method.Check = &models.CheckData{
			Number:      data.CheckNumber,
			AccountCode: data.AccountCode,
			BankRef:     data.BankRef,
		}

	case models.MethodCrypto:
		if data.CryptoName == "" {
			return nil, models.MethodFieldError{Field: "moneda"}
		}
		if data.CryptoWallet == "" {
			return nil, models.MethodFieldError{Field: "direccion_billetera"}
		}
		method.Crypto = &models.CryptoData{
			Currency: data.CryptoName,
			Address:  data.CryptoWallet,
		}

	default:
		return nil, models.ErrUnsupportedMethod
	}

	return method, nil
}
