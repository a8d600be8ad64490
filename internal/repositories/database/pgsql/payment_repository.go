package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	"github.com/SscSPs/connec_payment_sync/internal/models"
	"github.com/SscSPs/connec_payment_sync/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payments and their lines.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `
		SELECT payment_id, kind, reference, amount, currency_code, payment_date, payment_method,
		       note, label, operation, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE payment_id = $1;
	`
	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.Kind,
		&m.Reference,
		&m.Amount,
		&m.CurrencyCode,
		&m.PaymentDate,
		&m.PaymentMethod,
		&m.Note,
		&m.Label,
		&m.Operation,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+strconv.FormatInt(paymentID, 10), err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// SavePayment inserts a new payment or updates an existing one, and replaces its lines
// when lines is non-nil, within a DB transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine) (portsrepo.SavedPayment, error) {
	m := mapping.ToModelPayment(payment)
	saved := portsrepo.SavedPayment{PaymentID: m.PaymentID}

	err := r.RunInTx(ctx, func(tx pgx.Tx) error {
		if err := r.savePaymentRow(ctx, tx, m, &saved.PaymentID); err != nil {
			return err
		}
		if lines == nil {
			return nil
		}
		var err error
		saved.LineIDs, saved.RemovedLineIDs, err = r.replacePaymentLines(ctx, tx, saved.PaymentID, lines)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return portsrepo.SavedPayment{}, err
		}
		return portsrepo.SavedPayment{}, apperrors.NewAppError(500, "failed to save payment", err)
	}
	return saved, nil
}

func (r *PgxPaymentRepository) savePaymentRow(ctx context.Context, tx pgx.Tx, m models.Payment, id *int64) error {
	if m.PaymentID == 0 {
		insert := `
			INSERT INTO payments (kind, reference, amount, currency_code, payment_date, payment_method,
			                      note, label, operation, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING payment_id;
		`
		return tx.QueryRow(ctx, insert,
			m.Kind,
			m.Reference,
			m.Amount,
			m.CurrencyCode,
			m.PaymentDate,
			m.PaymentMethod,
			m.Note,
			m.Label,
			m.Operation,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		).Scan(id)
	}

	update := `
		UPDATE payments
		SET reference = $2, amount = $3, currency_code = $4, payment_date = $5, payment_method = $6,
		    note = $7, label = $8, operation = $9, last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1 AND kind = $12;
	`
	tag, err := tx.Exec(ctx, update,
		m.PaymentID,
		m.Reference,
		m.Amount,
		m.CurrencyCode,
		m.PaymentDate,
		m.PaymentMethod,
		m.Note,
		m.Label,
		m.Operation,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Kind,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// replacePaymentLines makes lines the complete line set of the payment and returns the
// identifier of each line plus the identifiers of the deleted ones.
func (r *PgxPaymentRepository) replacePaymentLines(ctx context.Context, tx pgx.Tx, paymentID int64, lines []domain.PaymentLine) ([]int64, []int64, error) {
	update := `
		UPDATE payment_lines
		SET invoice_id = $3, amount = $4
		WHERE line_id = $1 AND payment_id = $2;
	`
	insert := `
		INSERT INTO payment_lines (payment_id, invoice_id, amount)
		VALUES ($1, $2, $3)
		RETURNING line_id;
	`

	ids := make([]int64, len(lines))
	for i, line := range lines {
		l := mapping.ToModelPaymentLine(line)
		if l.LineID > 0 {
			tag, err := tx.Exec(ctx, update, l.LineID, paymentID, l.InvoiceID, l.Amount)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to update payment line %d: %w", l.LineID, err)
			}
			if tag.RowsAffected() == 1 {
				ids[i] = l.LineID
				continue
			}
		}
		if err := tx.QueryRow(ctx, insert, paymentID, l.InvoiceID, l.Amount).Scan(&ids[i]); err != nil {
			return nil, nil, fmt.Errorf("failed to insert payment line: %w", err)
		}
	}

	remove := `
		DELETE FROM payment_lines
		WHERE payment_id = $1 AND NOT (line_id = ANY($2))
		RETURNING line_id;
	`
	rows, err := tx.Query(ctx, remove, paymentID, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to delete replaced payment lines: %w", err)
	}
	removed, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect deleted payment lines: %w", err)
	}
	return ids, removed, nil
}

// ListPaymentLinesByPaymentID retrieves the lines of a payment ordered by line id.
func (r *PgxPaymentRepository) ListPaymentLinesByPaymentID(ctx context.Context, paymentID int64) ([]domain.PaymentLine, error) {
	if paymentID <= 0 {
		return nil, fmt.Errorf("%w: payment lines need a persisted payment, got id %d", apperrors.ErrPreconditionFailed, paymentID)
	}

	query := `
		SELECT line_id, payment_id, invoice_id, amount
		FROM payment_lines
		WHERE payment_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for payment "+strconv.FormatInt(paymentID, 10), err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PaymentLine, error) {
		var l models.PaymentLine
		err := row.Scan(&l.LineID, &l.PaymentID, &l.InvoiceID, &l.Amount)
		return l, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan lines for payment "+strconv.FormatInt(paymentID, 10), err)
	}

	return mapping.ToDomainPaymentLineSlice(modelLines), nil
}
