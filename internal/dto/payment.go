package dto

import "github.com/SscSPs/connec_payment_sync/internal/core/domain"

// ImportPaymentResponse is returned after an inbound payload was applied.
type ImportPaymentResponse struct {
	PaymentID int64              `json:"paymentID"`
	Kind      domain.PaymentKind `json:"kind"`
}

// ToImportPaymentResponse converts a saved payment to ImportPaymentResponse DTO
func ToImportPaymentResponse(p *domain.Payment) ImportPaymentResponse {
	return ImportPaymentResponse{PaymentID: p.PaymentID, Kind: p.Kind}
}
