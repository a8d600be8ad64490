package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/utils/fieldmap"
	"github.com/shopspring/decimal"
)

// paymentVariant is the fixed configuration that distinguishes one payment mapper from another.
type paymentVariant struct {
	kind              domain.PaymentKind
	discriminator     string
	paymentEntityName string
	lineEntityName    string
	invoiceEntityName string
	defaultLabel      string
	defaultOperation  string
}

var customerPaymentVariant = paymentVariant{
	kind:              domain.CustomerPayment,
	discriminator:     "CUSTOMER",
	paymentEntityName: domain.EntityPayment,
	lineEntityName:    domain.EntityPaymentLine,
	invoiceEntityName: domain.EntityInvoice,
	defaultLabel:      "(CustomerInvoicePayment)",
	defaultOperation:  "payment",
}

var supplierPaymentVariant = paymentVariant{
	kind:              domain.SupplierPayment,
	discriminator:     "SUPPLIER",
	paymentEntityName: domain.EntitySupplierPayment,
	lineEntityName:    domain.EntitySupplierPaymentLine,
	invoiceEntityName: domain.EntitySupplierInvoice,
	defaultLabel:      "(SupplierInvoicePayment)",
	defaultOperation:  "payment_supplier",
}

// paymentFields is the scalar correspondence table shared by every payment variant.
// Label and Operation are local bookkeeping fields and have no remote counterpart.
var paymentFields = fieldmap.Table[domain.Payment, connec.PaymentResource]{
	fieldmap.Scalar("transaction_date",
		func(p *domain.Payment) *time.Time { return &p.PaymentDate },
		func(r *connec.PaymentResource) **time.Time { return &r.TransactionDate }).
		OmitWhen(func(p *domain.Payment) bool { return p.PaymentDate.IsZero() }),
	fieldmap.Coerced("total_amount",
		func(p *domain.Payment) *decimal.Decimal { return &p.Amount },
		func(r *connec.PaymentResource) **connec.Amount { return &r.TotalAmount },
		connec.NewAmount,
		amountToLocal),
	fieldmap.Coerced("currency",
		func(p *domain.Payment) *string { return &p.CurrencyCode },
		func(r *connec.PaymentResource) **string { return &r.Currency },
		func(code string) string { return code },
		currencyToLocal),
	fieldmap.Scalar("payment_reference",
		func(p *domain.Payment) *string { return &p.Reference },
		func(r *connec.PaymentResource) **string { return &r.PaymentReference }),
	fieldmap.Scalar("payment_method",
		func(p *domain.Payment) *string { return &p.PaymentMethod },
		func(r *connec.PaymentResource) **string { return &r.PaymentMethod }),
	fieldmap.Scalar("private_note",
		func(p *domain.Payment) *string { return &p.Note },
		func(r *connec.PaymentResource) **string { return &r.PrivateNote }),
}

func amountToLocal(a connec.Amount) (decimal.Decimal, error) {
	d := a.Decimal()
	if d.IsNegative() {
		return d, fmt.Errorf("%w: negative amount %s", apperrors.ErrValidation, d.String())
	}
	return d, nil
}

func currencyToLocal(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" && len(code) != 3 {
		return "", fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, code)
	}
	return code, nil
}

// paymentMapper implements portssvc.PaymentMapperSvc for one variant.
type paymentMapper struct {
	BaseService
	variant    paymentVariant
	lineReader portsrepo.PaymentLineReader
	idMaps     portsrepo.IDMapReader
}

// NewCustomerPaymentMapper maps customer payments ("CUSTOMER" payloads).
func NewCustomerPaymentMapper(lineReader portsrepo.PaymentLineReader, idMaps portsrepo.IDMapReader) portssvc.PaymentMapperSvc {
	return &paymentMapper{variant: customerPaymentVariant, lineReader: lineReader, idMaps: idMaps}
}

// NewSupplierPaymentMapper maps supplier payments ("SUPPLIER" payloads).
func NewSupplierPaymentMapper(lineReader portsrepo.PaymentLineReader, idMaps portsrepo.IDMapReader) portssvc.PaymentMapperSvc {
	return &paymentMapper{variant: supplierPaymentVariant, lineReader: lineReader, idMaps: idMaps}
}

var _ portssvc.PaymentMapperSvc = (*paymentMapper)(nil)

func (m *paymentMapper) Kind() domain.PaymentKind {
	return m.variant.kind
}

func (m *paymentMapper) LocalEntityName() string {
	return m.variant.paymentEntityName
}

func (m *paymentMapper) LineEntityName() string {
	return m.variant.lineEntityName
}

func (m *paymentMapper) IsApplicable(res connec.PaymentResource) bool {
	return res.Type == m.variant.discriminator
}

// ToLocal copies the remote scalar fields onto payment and fills the variant defaults.
func (m *paymentMapper) ToLocal(ctx context.Context, res connec.PaymentResource, payment *domain.Payment) error {
	if !m.IsApplicable(res) {
		return fmt.Errorf("%w: payload type %q is not handled by the %s mapper", apperrors.ErrValidation, res.Type, m.variant.kind)
	}
	if err := paymentFields.ApplyToLocal(&res, payment); err != nil {
		return fmt.Errorf("failed to map %s payload: %w", m.variant.discriminator, err)
	}

	payment.Kind = m.variant.kind
	if payment.Label == "" {
		payment.Label = m.variant.defaultLabel
	}
	if payment.Operation == "" {
		payment.Operation = m.variant.defaultOperation
	}
	return nil
}

// ToRemote builds the remote payload of a persisted payment, including one entry per owned line.
func (m *paymentMapper) ToRemote(ctx context.Context, payment domain.Payment) (*connec.PaymentResource, error) {
	if !payment.IsPersisted() {
		return nil, fmt.Errorf("%w: cannot map payment without an identifier", apperrors.ErrPreconditionFailed)
	}

	res := &connec.PaymentResource{}
	paymentFields.ApplyToRemote(&payment, res)

	paymentRef, err := m.remoteRef(ctx, payment.PaymentID, m.variant.paymentEntityName)
	if err != nil {
		return nil, err
	}
	res.ID = paymentRef
	res.Type = m.variant.discriminator

	lines, err := m.lineReader.ListPaymentLinesByPaymentID(ctx, payment.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lines of payment %d: %w", payment.PaymentID, err)
	}

	res.PaymentLines = make([]connec.PaymentLineResource, 0, len(lines))
	for _, line := range lines {
		lineRes, err := m.lineToRemote(ctx, line)
		if err != nil {
			return nil, err
		}
		res.PaymentLines = append(res.PaymentLines, lineRes)
	}

	m.LogDebug(ctx, "Mapped payment to remote resource",
		slog.Int64("payment_id", payment.PaymentID),
		slog.Any("fields", paymentFields.Names()),
		slog.Int("lines", len(res.PaymentLines)))
	return res, nil
}

// LinesToLocal translates inbound payment lines. Every line must link an invoice that is
// already synchronized.
func (m *paymentMapper) LinesToLocal(ctx context.Context, res connec.PaymentResource) ([]domain.ImportedLine, error) {
	if res.PaymentLines == nil {
		return nil, nil
	}

	lines := make([]domain.ImportedLine, 0, len(res.PaymentLines))
	for i, lineRes := range res.PaymentLines {
		line, err := m.lineToLocal(ctx, lineRes)
		if err != nil {
			return nil, fmt.Errorf("payment line %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (m *paymentMapper) lineToLocal(ctx context.Context, lineRes connec.PaymentLineResource) (domain.ImportedLine, error) {
	var line domain.ImportedLine

	amount, err := amountToLocal(lineRes.Amount)
	if err != nil {
		return line, err
	}
	line.Amount = amount

	invoiceGUID := lineRes.LinkedTransactions.First()
	if invoiceGUID == "" {
		return line, fmt.Errorf("%w: line is not linked to an invoice", apperrors.ErrValidation)
	}
	invoiceID, err := m.localRef(ctx, invoiceGUID, m.variant.invoiceEntityName)
	if err != nil {
		return line, err
	}
	if invoiceID == 0 {
		return line, fmt.Errorf("%w: %s %s is not synchronized yet", apperrors.ErrPreconditionFailed, m.variant.invoiceEntityName, invoiceGUID)
	}
	line.InvoiceID = invoiceID

	line.RemoteGUID = lineRes.ID.First()
	if line.RemoteGUID != "" {
		if line.LineID, err = m.localRef(ctx, line.RemoteGUID, m.variant.lineEntityName); err != nil {
			return line, err
		}
	}
	return line, nil
}

func (m *paymentMapper) lineToRemote(ctx context.Context, line domain.PaymentLine) (connec.PaymentLineResource, error) {
	lineRes := connec.PaymentLineResource{Amount: connec.NewAmount(line.Amount)}

	lineRef, err := m.remoteRef(ctx, line.LineID, m.variant.lineEntityName)
	if err != nil {
		return lineRes, err
	}
	lineRes.ID = lineRef

	invoiceRef, err := m.remoteRef(ctx, line.InvoiceID, m.variant.invoiceEntityName)
	if err != nil {
		return lineRes, err
	}
	if invoiceRef == nil {
		m.LogDebug(ctx, "Invoice not synchronized yet, payment line left unlinked",
			slog.Int64("line_id", line.LineID),
			slog.Int64("invoice_id", line.InvoiceID))
	}
	lineRes.LinkedTransactions = invoiceRef

	return lineRes, nil
}

// localRef translates a remote guid into a local id; 0 when no correspondence exists.
func (m *paymentMapper) localRef(ctx context.Context, remoteGUID string, entityName string) (int64, error) {
	idMap, err := m.idMaps.FindIDMapByRemoteGUID(ctx, remoteGUID, entityName)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve remote %s %s: %w", entityName, remoteGUID, err)
	}
	if idMap == nil {
		return 0, nil
	}
	return idMap.LocalID, nil
}

// remoteRef translates a local id into a remote reference; nil when no correspondence exists.
func (m *paymentMapper) remoteRef(ctx context.Context, localID int64, entityName string) (connec.IDRefs, error) {
	idMap, err := m.idMaps.FindIDMapByLocalIDAndEntityName(ctx, localID, entityName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s %d: %w", entityName, localID, err)
	}
	if idMap == nil {
		return nil, nil
	}
	return connec.NewIDRefs(idMap.RemoteEntityGUID), nil
}
