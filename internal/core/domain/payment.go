package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind distinguishes customer receipts from supplier disbursements.
type PaymentKind string

const (
	CustomerPayment PaymentKind = "CUSTOMER"
	SupplierPayment PaymentKind = "SUPPLIER"
)

// Valid reports whether k is one of the known payment kinds.
func (k PaymentKind) Valid() bool {
	return k == CustomerPayment || k == SupplierPayment
}

// Payment is a local payment record. It owns its PaymentLines.
type Payment struct {
	PaymentID     int64           `json:"paymentID"` // 0 until persisted
	Kind          PaymentKind     `json:"kind"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
	Label         string          `json:"label"`     // bank line label, local only
	Operation     string          `json:"operation"` // bank operation code, local only
	AuditFields
}

// IsPersisted reports whether the payment has a stable identifier.
func (p Payment) IsPersisted() bool {
	return p.PaymentID > 0
}

// Validate checks the invariants required before a payment can be stored.
func (p Payment) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("invalid payment kind %q", p.Kind)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("payment amount must not be negative")
	}
	if p.CurrencyCode != "" && !isCurrencyCode(p.CurrencyCode) {
		return fmt.Errorf("currency code must be 3 uppercase letters, got %q", p.CurrencyCode)
	}
	return nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// PaymentLine allocates part of a payment to one invoice.
type PaymentLine struct {
	LineID    int64           `json:"lineID"`
	PaymentID int64           `json:"paymentID"`
	InvoiceID int64           `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount"`
}

// ImportedLine is a payment line decoded from an inbound payload together with the
// remote guid it arrived under. LineID is set when that guid already has a correspondence.
type ImportedLine struct {
	PaymentLine
	RemoteGUID string
}
