package handlers

import (
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators wires custom binding validators into gin's validator
// engine. Safe to call more than once; re-registering overwrites.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", validCurrency)
	}
}

// validCurrency accepts only the enumerated currency codes.
func validCurrency(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).IsValid()
}
