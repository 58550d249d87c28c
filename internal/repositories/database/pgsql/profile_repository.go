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

const profileColumns = `user_id, first_name, last_name, email, phone, nationality, visa_type,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.UserID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.Nationality,
		&m.VisaType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapError(err, "find profile")
	}
	d := mapping.ToDomainProfile(m)
	return &d, nil
}

func (r *PgxProfileRepository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY first_name, last_name, user_id
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "query profiles")
	}
	defer rows.Close()

	list := []models.Profile{}
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, mapError(err, "scan profile")
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate profiles")
	}
	return mapping.ToDomainProfileSlice(list), nil
}

func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		UPDATE profiles SET
			first_name = $2,
			last_name = $3,
			phone = $4,
			nationality = $5,
			visa_type = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.FirstName,
		m.LastName,
		m.Phone,
		m.Nationality,
		m.VisaType,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "update profile")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
