package repositories

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
)

// PaymentReader defines read operations for visa payments
type PaymentReader interface {
	// ListPaymentsByUser retrieves a user's payments, newest first.
	ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error)

	// ListPayments retrieves payments across all users, newest first.
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error)

	// FindPaymentByID retrieves a single payment.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for visa payments
type PaymentWriter interface {
	// SavePayment inserts a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment. Missing rows yield apperrors.ErrNotFound.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentPlanReader defines read operations for payment plans
type PaymentPlanReader interface {
	// FindPlanByUserID returns the user's plan or apperrors.ErrNotFound.
	FindPlanByUserID(ctx context.Context, userID string) (*domain.PaymentPlan, error)
}

// PaymentPlanWriter defines write operations for payment plans
type PaymentPlanWriter interface {
	// UpsertPlan creates or replaces the single plan held by plan.UserID.
	UpsertPlan(ctx context.Context, plan domain.PaymentPlan) error

	// DeletePlan removes the user's plan.
	DeletePlan(ctx context.Context, userID string) error
}

// PaymentPlanRepositoryFacade combines all payment-plan repository interfaces
type PaymentPlanRepositoryFacade interface {
	PaymentPlanReader
	PaymentPlanWriter
}
