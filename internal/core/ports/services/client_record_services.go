package services

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
)

// DocumentReaderSvc defines read operations for client document metadata
type DocumentReaderSvc interface {
	ListUserDocuments(ctx context.Context, userID string) ([]domain.ClientDocument, error)
}

// DocumentWriterSvc defines admin write operations for client document metadata
type DocumentWriterSvc interface {
	// RegisterDocument records metadata for a file already placed in storage.
	RegisterDocument(ctx context.Context, userID string, req dto.RegisterDocumentRequest, creatorUserID string) (*domain.ClientDocument, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentSvcFacade combines all document service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

// LoginHistorySvc records portal sign-ins and assembles a client's footprint.
type LoginHistorySvc interface {
	RecordLogin(ctx context.Context, userID, ipAddress, userAgent string) (*domain.LoginRecord, error)
	ListUserLogins(ctx context.Context, userID string, limit, offset int) ([]domain.LoginRecord, error)

	// GetFootprint loads a client's documents and recent sign-ins together.
	GetFootprint(ctx context.Context, userID string) (*domain.ClientFootprint, error)
}
