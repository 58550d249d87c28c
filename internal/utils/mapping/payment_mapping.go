package mapping

import (
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		Status:        string(d.Status),
		PaymentDate:   d.PaymentDate,
		Method:        d.Method,
		TransactionID: d.TransactionID,
		Description:   d.Description,
		VisaType:      d.VisaType,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.PaymentStatus(m.Status),
		PaymentDate:   m.PaymentDate,
		Method:        m.Method,
		TransactionID: m.TransactionID,
		Description:   m.Description,
		VisaType:      m.VisaType,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelPaymentPlan converts a domain PaymentPlan to a model PaymentPlan
func ToModelPaymentPlan(d domain.PaymentPlan) models.PaymentPlan {
	return models.PaymentPlan{
		UserID:       d.UserID,
		TotalAmount:  d.TotalAmount,
		CurrencyCode: d.CurrencyCode,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentPlan converts a model PaymentPlan to a domain PaymentPlan
func ToDomainPaymentPlan(m models.PaymentPlan) domain.PaymentPlan {
	return domain.PaymentPlan{
		UserID:       m.UserID,
		TotalAmount:  m.TotalAmount,
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
