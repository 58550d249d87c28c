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

const documentColumns = `document_id, user_id, file_name, file_path, file_size, file_type,
	description, upload_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) ListDocumentsByUser(ctx context.Context, userID string) ([]domain.ClientDocument, error) {
	query := `SELECT ` + documentColumns + `
		FROM client_documents
		WHERE user_id = $1
		ORDER BY upload_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err, "query client documents")
	}
	defer rows.Close()

	list := []models.ClientDocument{}
	for rows.Next() {
		var m models.ClientDocument
		if err := rows.Scan(
			&m.DocumentID,
			&m.UserID,
			&m.FileName,
			&m.FilePath,
			&m.FileSize,
			&m.FileType,
			&m.Description,
			&m.UploadDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, mapError(err, "scan client document")
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate client documents")
	}
	return mapping.ToDomainClientDocumentSlice(list), nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.ClientDocument) error {
	m := mapping.ToModelClientDocument(doc)
	query := `
		INSERT INTO client_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.UserID,
		m.FileName,
		m.FilePath,
		m.FileSize,
		m.FileType,
		m.Description,
		m.UploadDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return mapError(err, "save client document")
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM client_documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return mapError(err, "delete client document")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
