package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
)

type paymentPlanService struct {
	BaseService
	planRepo portsrepo.PaymentPlanRepositoryFacade
}

// NewPaymentPlanService creates a new payment plan service.
func NewPaymentPlanService(planRepo portsrepo.PaymentPlanRepositoryFacade) portssvc.PaymentPlanSvcFacade {
	return &paymentPlanService{planRepo: planRepo}
}

var _ portssvc.PaymentPlanSvcFacade = (*paymentPlanService)(nil)

func (s *paymentPlanService) GetPlan(ctx context.Context, userID string) (*domain.PaymentPlan, error) {
	plan, err := s.planRepo.FindPlanByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get payment plan", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get payment plan in service: %w", err)
	}
	return plan, nil
}

// UpsertPlan replaces the user's single plan, keeping the original creation audit.
func (s *paymentPlanService) UpsertPlan(ctx context.Context, userID string, req dto.UpsertPaymentPlanRequest, editorUserID string) (*domain.PaymentPlan, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: plan total must be positive", apperrors.ErrValidation)
	}
	code, err := dto.NormalizeCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := domain.PaymentPlan{
		UserID:       userID,
		TotalAmount:  req.TotalAmount,
		CurrencyCode: code,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     editorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: editorUserID,
		},
	}

	existing, err := s.planRepo.FindPlanByUserID(ctx, userID)
	switch {
	case err == nil:
		plan.CreatedAt = existing.CreatedAt
		plan.CreatedBy = existing.CreatedBy
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to read existing payment plan", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to upsert payment plan in service: %w", err)
	}

	if err := s.planRepo.UpsertPlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to upsert payment plan", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to upsert payment plan in service: %w", err)
	}
	return &plan, nil
}

func (s *paymentPlanService) DeletePlan(ctx context.Context, userID string) error {
	if err := s.planRepo.DeletePlan(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment plan", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete payment plan in service: %w", err)
	}
	return nil
}
