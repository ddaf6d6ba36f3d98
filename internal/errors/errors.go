// Package errors provides custom error types for the Hishab API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized    = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidPassword = &AppError{Code: "INVALID_PASSWORD", Message: "Invalid password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrInvalidAmount          = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrInvalidGoalType        = &AppError{Code: "INVALID_GOAL_TYPE", Message: "Unsupported goal type", StatusCode: http.StatusBadRequest}
	ErrInvalidPaymentType     = &AppError{Code: "INVALID_PAYMENT_TYPE", Message: "Unsupported special payment type", StatusCode: http.StatusBadRequest}
	ErrInvalidLoanAmounts     = &AppError{Code: "INVALID_LOAN_AMOUNTS", Message: "Remaining amount must be between zero and the total amount", StatusCode: http.StatusBadRequest}
	ErrPaymentNotFound        = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Special payment not found", StatusCode: http.StatusNotFound}
)

// Metrics errors.
var (
	ErrZeroTarget       = &AppError{Code: "ZERO_TARGET", Message: "Progress is undefined for a zero target amount", StatusCode: http.StatusUnprocessableEntity}
	ErrNoPaymentCeiling = &AppError{Code: "NO_PAYMENT_CEILING", Message: "Progress is undefined for monthly special payments", StatusCode: http.StatusUnprocessableEntity}
)
