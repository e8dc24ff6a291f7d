// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("commitment_type", validateCommitmentType)
		_ = v.RegisterValidation("ledger_type", validateLedgerType)
	}
}

func validateCommitmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "bill", "emi", "subscription":
		return true
	}
	return false
}

func validateLedgerType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "credit", "debit":
		return true
	}
	return false
}
