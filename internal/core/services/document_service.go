package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/google/uuid"
)

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
}

// NewDocumentService creates a new client document service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) ListUserDocuments(ctx context.Context, userID string) ([]domain.ClientDocument, error) {
	list, err := s.documentRepo.ListDocumentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client documents", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list documents in service: %w", err)
	}
	return list, nil
}

func (s *documentService) RegisterDocument(ctx context.Context, userID string, req dto.RegisterDocumentRequest, creatorUserID string) (*domain.ClientDocument, error) {
	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" || strings.ContainsAny(fileName, `/\`) {
		return nil, fmt.Errorf("%w: file name %q must be a bare name", apperrors.ErrValidation, req.FileName)
	}
	filePath, err := documentPath(userID, fileName, req.FilePath)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	uploadedAt := now
	if req.UploadDate != nil {
		uploadedAt = req.UploadDate.UTC()
	}

	doc := domain.ClientDocument{
		DocumentID:  uuid.NewString(),
		UserID:      userID,
		FileName:    fileName,
		FilePath:    filePath,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
		Description: req.Description,
		UploadDate:  uploadedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save client document",
			slog.String("user_id", userID),
			slog.String("file_path", filePath))
		return nil, fmt.Errorf("failed to register document in service: %w", err)
	}

	s.LogInfo(ctx, "Client document registered",
		slog.String("document_id", doc.DocumentID),
		slog.String("user_id", userID),
		slog.Int64("file_size", doc.FileSize))
	return &doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete client document", slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document in service: %w", err)
	}
	return nil
}

// documentPath resolves the storage key for a document. Keys always live
// under the owning client's prefix.
func documentPath(userID, fileName, requested string) (string, error) {
	prefix := userID + "/"
	if strings.TrimSpace(requested) == "" {
		return prefix + fileName, nil
	}
	cleaned := path.Clean(strings.TrimSpace(requested))
	if !strings.HasPrefix(cleaned, prefix) || cleaned == prefix {
		return "", fmt.Errorf("%w: file path must be inside %q", apperrors.ErrValidation, prefix)
	}
	return cleaned, nil
}
