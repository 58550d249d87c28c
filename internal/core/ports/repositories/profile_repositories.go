package repositories

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
)

// ProfileReader defines read operations for client profiles
type ProfileReader interface {
	// FindProfileByUserID retrieves a profile by its owning user.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)

	// ListProfiles retrieves profiles ordered by first name.
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error)
}

// ProfileWriter defines write operations for client profiles
type ProfileWriter interface {
	// UpdateProfile overwrites the editable profile fields.
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
