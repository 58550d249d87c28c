package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile in service: %w", err)
	}
	return profile, nil
}

func (s *profileService) ListClients(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client profiles")
		return nil, fmt.Errorf("failed to list profiles in service: %w", err)
	}
	return profiles, nil
}

// UpdateProfile edits the caller's own profile. Email stays owned by the identity provider.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for update: %w", err)
	}

	profile.FirstName = strings.TrimSpace(req.FirstName)
	profile.LastName = strings.TrimSpace(req.LastName)
	profile.Phone = req.Phone
	profile.Nationality = strings.ToUpper(req.Nationality)
	profile.VisaType = req.VisaType
	profile.LastUpdatedAt = time.Now().UTC()
	profile.LastUpdatedBy = userID

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile in service: %w", err)
	}
	return profile, nil
}
