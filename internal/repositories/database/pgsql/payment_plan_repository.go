package pgsql

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/SscSPs/visa_portal_backend/internal/models"
	"github.com/SscSPs/visa_portal_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentPlanRepository struct {
	BaseRepository
}

func newPgxPaymentPlanRepository(pool *pgxpool.Pool) portsrepo.PaymentPlanRepositoryFacade {
	return &PgxPaymentPlanRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentPlanRepositoryFacade = (*PgxPaymentPlanRepository)(nil)

func (r *PgxPaymentPlanRepository) FindPlanByUserID(ctx context.Context, userID string) (*domain.PaymentPlan, error) {
	query := `
		SELECT user_id, total_amount, currency_code, description,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payment_plans
		WHERE user_id = $1;`
	var m models.PaymentPlan
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.TotalAmount,
		&m.CurrencyCode,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, "find payment plan")
	}
	d := mapping.ToDomainPaymentPlan(m)
	return &d, nil
}

// UpsertPlan keeps at most one plan per user; created_* survive updates.
func (r *PgxPaymentPlanRepository) UpsertPlan(ctx context.Context, plan domain.PaymentPlan) error {
	m := mapping.ToModelPaymentPlan(plan)
	query := `
		INSERT INTO payment_plans (user_id, total_amount, currency_code, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			total_amount = EXCLUDED.total_amount,
			currency_code = EXCLUDED.currency_code,
			description = EXCLUDED.description,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.TotalAmount,
		m.CurrencyCode,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return mapError(err, "upsert payment plan")
}

func (r *PgxPaymentPlanRepository) DeletePlan(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_plans WHERE user_id = $1;`, userID)
	if err != nil {
		return mapError(err, "delete payment plan")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
