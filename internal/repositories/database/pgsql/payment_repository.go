package pgsql

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/SscSPs/visa_portal_backend/internal/models"
	"github.com/SscSPs/visa_portal_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, user_id, amount, currency_code, status, payment_date,
	method, transaction_id, description, visa_type,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row rowScanner) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.UserID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Status,
		&m.PaymentDate,
		&m.Method,
		&m.TransactionID,
		&m.Description,
		&m.VisaType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()
	list := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, mapError(err, "scan payment")
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate payments")
	}
	return mapping.ToDomainPaymentSlice(list), nil
}

func (r *PgxPaymentRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM visa_payments
		WHERE user_id = $1
		ORDER BY payment_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err, "query user payments")
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + paymentColumns + `
		FROM visa_payments
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "query payments")
	}
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM visa_payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		return nil, mapError(err, "find payment")
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO visa_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.UserID,
		m.Amount,
		m.CurrencyCode,
		m.Status,
		m.PaymentDate,
		m.Method,
		m.TransactionID,
		m.Description,
		m.VisaType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return mapError(err, "save payment")
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM visa_payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return mapError(err, "delete payment")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
