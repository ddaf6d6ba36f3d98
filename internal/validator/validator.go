// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"hishab/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("goal_type", validateGoalType)
		_ = v.RegisterValidation("payment_type", validatePaymentType)
		_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateGoalType(fl validator.FieldLevel) bool {
	return models.GoalType(fl.Field().String()).Valid()
}

func validatePaymentType(fl validator.FieldLevel) bool {
	return models.SpecialPaymentType(fl.Field().String()).Valid()
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}
