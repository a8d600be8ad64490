package services

import (
	"context"

	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
)

// PaymentMapperSvc translates one kind of payment between the local and remote representations.
// Implementations are stateless apart from fixed configuration.
type PaymentMapperSvc interface {
	// Kind is the local payment kind this mapper owns.
	Kind() domain.PaymentKind

	// LocalEntityName is the correspondence tag of the payment itself.
	LocalEntityName() string

	// LineEntityName is the correspondence tag of the payment's lines.
	LineEntityName() string

	// IsApplicable reports whether the payload's discriminator belongs to this mapper.
	IsApplicable(res connec.PaymentResource) bool

	// ToLocal copies the payload onto payment in place. It does not persist.
	ToLocal(ctx context.Context, res connec.PaymentResource, payment *domain.Payment) error

	// LinesToLocal translates the payload's payment lines, resolving linked invoices and known
	// lines through the correspondence registry. It returns nil when the payload carries no
	// payment_lines field.
	LinesToLocal(ctx context.Context, res connec.PaymentResource) ([]domain.ImportedLine, error)

	// ToRemote builds the remote payload of a persisted payment.
	ToRemote(ctx context.Context, payment domain.Payment) (*connec.PaymentResource, error)
}

// PaymentMapperRegistrySvc selects the mapper responsible for a payload or a stored payment.
type PaymentMapperRegistrySvc interface {
	// Resolve returns the first applicable mapper or apperrors.ErrNoMapper.
	Resolve(res connec.PaymentResource) (PaymentMapperSvc, error)

	// ForKind returns the mapper for a local payment kind or apperrors.ErrNoMapper.
	ForKind(kind domain.PaymentKind) (PaymentMapperSvc, error)
}
