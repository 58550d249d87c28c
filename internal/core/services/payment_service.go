package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/google/uuid"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListUserPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	list, err := s.paymentRepo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user payments", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	return list, nil
}

func (s *paymentService) ListAllPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	list, err := s.paymentRepo.ListPayments(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	return list, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	// Binding covers presence and shape; amount sign and code membership are checked here.
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	code, err := dto.NormalizeCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	status := domain.PaymentStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, req.Status)
	}

	now := time.Now().UTC()
	paidAt := now
	if req.PaymentDate != nil {
		paidAt = req.PaymentDate.UTC()
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		UserID:        req.UserID,
		Amount:        req.Amount,
		CurrencyCode:  code,
		Status:        status,
		PaymentDate:   paidAt,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Description:   req.Description,
		VisaType:      req.VisaType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("user_id", req.UserID),
			slog.String("currency", code))
		return nil, fmt.Errorf("failed to create payment in service: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("user_id", payment.UserID),
		slog.String("status", string(payment.Status)))
	return &payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete payment in service: %w", err)
	}
	return nil
}
