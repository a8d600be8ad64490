package mapping

import (
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	"github.com/SscSPs/connec_payment_sync/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		Kind:          string(d.Kind),
		Reference:     d.Reference,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		PaymentDate:   d.PaymentDate,
		PaymentMethod: d.PaymentMethod,
		Note:          d.Note,
		Label:         d.Label,
		Operation:     d.Operation,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		Kind:          domain.PaymentKind(m.Kind),
		Reference:     m.Reference,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		PaymentDate:   m.PaymentDate,
		PaymentMethod: m.PaymentMethod,
		Note:          m.Note,
		Label:         m.Label,
		Operation:     m.Operation,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentLine converts a domain PaymentLine to a model PaymentLine
func ToModelPaymentLine(d domain.PaymentLine) models.PaymentLine {
	return models.PaymentLine{
		LineID:    d.LineID,
		PaymentID: d.PaymentID,
		InvoiceID: d.InvoiceID,
		Amount:    d.Amount,
	}
}

// ToDomainPaymentLine converts a model PaymentLine to a domain PaymentLine
func ToDomainPaymentLine(m models.PaymentLine) domain.PaymentLine {
	return domain.PaymentLine{
		LineID:    m.LineID,
		PaymentID: m.PaymentID,
		InvoiceID: m.InvoiceID,
		Amount:    m.Amount,
	}
}

// ToDomainPaymentLineSlice converts a slice of model PaymentLines, keeping their order
func ToDomainPaymentLineSlice(ms []models.PaymentLine) []domain.PaymentLine {
	ds := make([]domain.PaymentLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentLine(m)
	}
	return ds
}
