package pgsql

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/SscSPs/visa_portal_backend/internal/models"
	"github.com/SscSPs/visa_portal_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoginHistoryRepository struct {
	BaseRepository
}

func newPgxLoginHistoryRepository(pool *pgxpool.Pool) portsrepo.LoginHistoryRepositoryFacade {
	return &PgxLoginHistoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LoginHistoryRepositoryFacade = (*PgxLoginHistoryRepository)(nil)

func (r *PgxLoginHistoryRepository) ListLoginsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.LoginRecord, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT login_id, user_id, login_time, ip_address, user_agent
		FROM login_history
		WHERE user_id = $1
		ORDER BY login_time DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, mapError(err, "query login history")
	}

	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LoginRecord])
	if err != nil {
		return nil, mapError(err, "collect login history")
	}
	return mapping.ToDomainLoginRecordSlice(list), nil
}

func (r *PgxLoginHistoryRepository) SaveLogin(ctx context.Context, rec domain.LoginRecord) error {
	m := mapping.ToModelLoginRecord(rec)
	query := `
		INSERT INTO login_history (login_id, user_id, login_time, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5);`
	_, err := r.Pool.Exec(ctx, query, m.LoginID, m.UserID, m.LoginTime, m.IPAddress, m.UserAgent)
	return mapError(err, "save login")
}
