package dto

import (
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the admin form for recording a payment.
type CreatePaymentRequest struct {
	UserID        string          `json:"userID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	Status        string          `json:"status" binding:"required,payment_status"`
	PaymentDate   *time.Time      `json:"paymentDate"`
	Method        string          `json:"method" binding:"max=50"`
	TransactionID string          `json:"transactionID" binding:"max=100"`
	Description   string          `json:"description" binding:"max=500"`
	VisaType      string          `json:"visaType" binding:"max=100"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Method        string          `json:"method,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	Description   string          `json:"description,omitempty"`
	VisaType      string          `json:"visaType,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		CurrencyCode:  p.CurrencyCode,
		Status:        string(p.Status),
		PaymentDate:   p.PaymentDate,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		Description:   p.Description,
		VisaType:      p.VisaType,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListPaymentResponse converts payments to their DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// UpsertPaymentPlanRequest defines the admin form for a client's payment plan.
type UpsertPaymentPlanRequest struct {
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	Description  string          `json:"description" binding:"max=500"`
}

// PaymentPlanResponse defines the data returned for a payment plan.
type PaymentPlanResponse struct {
	UserID        string          `json:"userID"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   string          `json:"description,omitempty"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToPaymentPlanResponse converts a domain.PaymentPlan to its DTO.
func ToPaymentPlanResponse(p *domain.PaymentPlan) PaymentPlanResponse {
	return PaymentPlanResponse{
		UserID:        p.UserID,
		TotalAmount:   p.TotalAmount,
		CurrencyCode:  p.CurrencyCode,
		Description:   p.Description,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}
