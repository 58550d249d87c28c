package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	registerCustomValidations(validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(v)
	}
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
		return domain.PaymentStatus(fl.Field().String()).IsValid()
	})
}

// NormalizeCurrencyCode upper-cases and validates an ISO 4217 code.
func NormalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validate.Var(code, "required,iso4217"); err != nil {
		return "", fmt.Errorf("%w: '%s' is not an ISO 4217 currency code", apperrors.ErrValidation, code)
	}
	return code, nil
}
