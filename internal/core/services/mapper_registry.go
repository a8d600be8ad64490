package services

import (
	"fmt"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
)

type paymentMapperRegistry struct {
	mappers []portssvc.PaymentMapperSvc
}

// NewPaymentMapperRegistry creates a registry over a fixed, ordered set of mappers.
func NewPaymentMapperRegistry(mappers ...portssvc.PaymentMapperSvc) portssvc.PaymentMapperRegistrySvc {
	return &paymentMapperRegistry{mappers: mappers}
}

// Resolve returns the first mapper accepting the payload.
func (r *paymentMapperRegistry) Resolve(res connec.PaymentResource) (portssvc.PaymentMapperSvc, error) {
	for _, m := range r.mappers {
		if m.IsApplicable(res) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: payment type %q", apperrors.ErrNoMapper, res.Type)
}

// ForKind returns the mapper owning a local payment kind.
func (r *paymentMapperRegistry) ForKind(kind domain.PaymentKind) (portssvc.PaymentMapperSvc, error) {
	for _, m := range r.mappers {
		if m.Kind() == kind {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: payment kind %q", apperrors.ErrNoMapper, kind)
}
