package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a visa payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// IsValid reports whether s is one of the known statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment is a single payment recorded against a client.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        PaymentStatus   `json:"status"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Method        string          `json:"method,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
	Description   string          `json:"description,omitempty"`
	VisaType      string          `json:"visaType,omitempty"`
	AuditFields
}

// PaymentPlan is the agreed total a client is working towards. One per user.
type PaymentPlan struct {
	UserID       string          `json:"userID"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description,omitempty"`
	AuditFields
}
