package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the row shape of the payments table.
type Payment struct {
	PaymentID     int64           `db:"payment_id"`
	Kind          string          `db:"kind"`
	Reference     string          `db:"reference"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMethod string          `db:"payment_method"`
	Note          string          `db:"note"`
	Label         string          `db:"label"`
	Operation     string          `db:"operation"`
	AuditFields
}

// PaymentLine is the row shape of the payment_lines table.
type PaymentLine struct {
	LineID    int64           `db:"line_id"`
	PaymentID int64           `db:"payment_id"`
	InvoiceID int64           `db:"invoice_id"`
	Amount    decimal.Decimal `db:"amount"`
}
