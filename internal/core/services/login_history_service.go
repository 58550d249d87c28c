package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// footprintLoginLimit caps the sign-ins shown on an admin footprint.
	footprintLoginLimit = 20
	maxUserAgentLength  = 512
)

type loginHistoryService struct {
	BaseService
	loginRepo    portsrepo.LoginHistoryRepositoryFacade
	documentRepo portsrepo.DocumentReader
}

// NewLoginHistoryService creates a new login history service.
func NewLoginHistoryService(loginRepo portsrepo.LoginHistoryRepositoryFacade, documentRepo portsrepo.DocumentReader) portssvc.LoginHistorySvc {
	return &loginHistoryService{loginRepo: loginRepo, documentRepo: documentRepo}
}

var _ portssvc.LoginHistorySvc = (*loginHistoryService)(nil)

func (s *loginHistoryService) RecordLogin(ctx context.Context, userID, ipAddress, userAgent string) (*domain.LoginRecord, error) {
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}
	rec := domain.LoginRecord{
		LoginID:   uuid.NewString(),
		UserID:    userID,
		LoginTime: time.Now().UTC(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.loginRepo.SaveLogin(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to record login in service: %w", err)
	}
	s.LogDebug(ctx, "Login recorded", slog.String("user_id", userID), slog.String("ip_address", ipAddress))
	return &rec, nil
}

func (s *loginHistoryService) ListUserLogins(ctx context.Context, userID string, limit, offset int) ([]domain.LoginRecord, error) {
	list, err := s.loginRepo.ListLoginsByUser(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list login history", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list logins in service: %w", err)
	}
	return list, nil
}

func (s *loginHistoryService) GetFootprint(ctx context.Context, userID string) (*domain.ClientFootprint, error) {
	var (
		docs   []domain.ClientDocument
		logins []domain.LoginRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.documentRepo.ListDocumentsByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		logins, err = s.loginRepo.ListLoginsByUser(gctx, userID, footprintLoginLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load client footprint", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load footprint in service: %w", err)
	}

	footprint := &domain.ClientFootprint{UserID: userID, Documents: docs, Logins: logins}
	if len(logins) > 0 {
		last := logins[0].LoginTime
		footprint.LastLogin = &last
	}
	return footprint, nil
}
