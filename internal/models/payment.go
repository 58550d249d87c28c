package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the visa_payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	Status        string          `db:"status"`
	PaymentDate   time.Time       `db:"payment_date"`
	Method        string          `db:"method"`
	TransactionID string          `db:"transaction_id"`
	Description   string          `db:"description"`
	VisaType      string          `db:"visa_type"`
	AuditFields
}

// PaymentPlan is a row of the payment_plans table, keyed by user.
type PaymentPlan struct {
	UserID       string          `db:"user_id"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	AuditFields
}
