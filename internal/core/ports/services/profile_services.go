package services

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
)

// ProfileReaderSvc defines read operations for client profiles
type ProfileReaderSvc interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Profile, error)
}

// ProfileWriterSvc defines write operations for client profiles
type ProfileWriterSvc interface {
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
