package repositories

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
)

// DocumentReader defines read operations for client document metadata
type DocumentReader interface {
	// ListDocumentsByUser retrieves a client's documents, newest upload first.
	ListDocumentsByUser(ctx context.Context, userID string) ([]domain.ClientDocument, error)
}

// DocumentWriter defines write operations for client document metadata
type DocumentWriter interface {
	// SaveDocument inserts document metadata. A reused file path yields apperrors.ErrDuplicate.
	SaveDocument(ctx context.Context, doc domain.ClientDocument) error

	// DeleteDocument removes the metadata row. Missing rows yield apperrors.ErrNotFound.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// LoginHistoryReader defines read operations for portal sign-ins
type LoginHistoryReader interface {
	// ListLoginsByUser retrieves a user's sign-ins, most recent first.
	ListLoginsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.LoginRecord, error)
}

// LoginHistoryWriter defines write operations for portal sign-ins
type LoginHistoryWriter interface {
	SaveLogin(ctx context.Context, rec domain.LoginRecord) error
}

// LoginHistoryRepositoryFacade combines all login history repository interfaces
type LoginHistoryRepositoryFacade interface {
	LoginHistoryReader
	LoginHistoryWriter
}
