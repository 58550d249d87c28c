package services

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for visa payments
type PaymentReaderSvc interface {
	// ListUserPayments returns a client's payments, newest first.
	ListUserPayments(ctx context.Context, userID string) ([]domain.Payment, error)

	// ListAllPayments returns payments across clients for the admin screen.
	ListAllPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines admin write operations for visa payments
type PaymentWriterSvc interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}

// PaymentPlanReaderSvc defines read operations for payment plans
type PaymentPlanReaderSvc interface {
	GetPlan(ctx context.Context, userID string) (*domain.PaymentPlan, error)
}

// PaymentPlanWriterSvc defines admin write operations for payment plans
type PaymentPlanWriterSvc interface {
	UpsertPlan(ctx context.Context, userID string, req dto.UpsertPaymentPlanRequest, editorUserID string) (*domain.PaymentPlan, error)
	DeletePlan(ctx context.Context, userID string) error
}

// PaymentPlanSvcFacade combines all payment-plan service interfaces
type PaymentPlanSvcFacade interface {
	PaymentPlanReaderSvc
	PaymentPlanWriterSvc
}

// SummarySvc computes payment progress in a display currency
type SummarySvc interface {
	// Summarize aggregates a user's payments and plan into displayCurrency.
	// Selections are tracked per viewer and subject: a newer call by the same
	// viewerID for the same userID cancels this one with apperrors.ErrSuperseded.
	Summarize(ctx context.Context, viewerID, userID, displayCurrency string) (*domain.PaymentSummary, error)
}
