package repositories

import (
	"context"

	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its identifier. Returns apperrors.ErrNotFound if missing.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
}

// PaymentLineReader defines read operations for the lines owned by a payment
type PaymentLineReader interface {
	// ListPaymentLinesByPaymentID returns the lines of a payment ordered by line id ascending.
	// A non-positive paymentID fails with apperrors.ErrPreconditionFailed.
	ListPaymentLinesByPaymentID(ctx context.Context, paymentID int64) ([]domain.PaymentLine, error)
}

// SavedPayment reports the identifiers assigned by SavePayment.
type SavedPayment struct {
	PaymentID int64
	// LineIDs holds one identifier per line passed to SavePayment, in the same order.
	LineIDs []int64
	// RemovedLineIDs lists lines of the payment that were not in the saved set and got deleted.
	RemovedLineIDs []int64
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment inserts the payment when PaymentID is 0 and updates it otherwise.
	// A nil lines slice leaves the stored lines untouched. Otherwise the stored lines are
	// replaced by lines in the same transaction: a line whose LineID belongs to the payment
	// is updated, any other line is inserted, and stored lines not in the set are deleted.
	SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine) (SavedPayment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentLineReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
