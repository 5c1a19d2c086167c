// Package errors provides application-level error types and utilities.
// It defines the fixed error taxonomy used across the storefront: validation,
// not found, business-rule, payment, rate-limit, and storage errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation            ErrorType = "validation_error"
	ErrorTypeNotFound              ErrorType = "resource_not_found"
	ErrorTypeConflict              ErrorType = "conflict"
	ErrorTypeUnauthorized          ErrorType = "unauthorized"
	ErrorTypeForbidden             ErrorType = "forbidden"
	ErrorTypeBusinessRuleViolation ErrorType = "business_rule_violation"
	ErrorTypePaymentProcessing     ErrorType = "payment_processing_error"
	ErrorTypeRateLimitExceeded     ErrorType = "rate_limit_exceeded"
	ErrorTypeDatabase              ErrorType = "database_error"
	ErrorTypeInternal              ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details []string  `json:"details,omitempty"`
	// Operational errors are expected failures (bad input, rule violations)
	// safe to surface verbatim. Non-operational errors carry an internal
	// cause that must only be logged, never returned to the caller.
	Operational bool  `json:"-"`
	cause       error `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying cause for logging purposes
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeValidation,
		Message:     message,
		Code:        http.StatusBadRequest,
		Details:     details,
		Operational: true,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeNotFound,
		Message:     message,
		Code:        http.StatusNotFound,
		Details:     details,
		Operational: true,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeConflict,
		Message:     message,
		Code:        http.StatusConflict,
		Details:     details,
		Operational: true,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeUnauthorized,
		Message:     message,
		Code:        http.StatusUnauthorized,
		Details:     details,
		Operational: true,
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeForbidden,
		Message:     message,
		Code:        http.StatusForbidden,
		Details:     details,
		Operational: true,
	}
}

// NewBusinessRuleError creates a new business rule violation error
func NewBusinessRuleError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeBusinessRuleViolation,
		Message:     message,
		Code:        http.StatusUnprocessableEntity,
		Details:     details,
		Operational: true,
	}
}

// NewPaymentError creates a new payment processing error
func NewPaymentError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypePaymentProcessing,
		Message:     message,
		Code:        http.StatusPaymentRequired,
		Details:     details,
		Operational: true,
	}
}

// NewRateLimitError creates a new rate limit exceeded error
func NewRateLimitError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeRateLimitExceeded,
		Message:     message,
		Code:        http.StatusTooManyRequests,
		Details:     details,
		Operational: true,
	}
}

// NewDatabaseError wraps an unexpected storage or provider failure.
// The message is safe for callers; the cause is only for logs.
func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{
		Type:        ErrorTypeDatabase,
		Message:     message,
		Code:        http.StatusInternalServerError,
		Operational: false,
		cause:       cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:        ErrorTypeInternal,
		Message:     message,
		Code:        http.StatusInternalServerError,
		Details:     details,
		Operational: false,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsBusinessRuleError checks if the error is a business rule violation
func IsBusinessRuleError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeBusinessRuleViolation
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
