package models

import "errors"

// Common errors used throughout the application
var (
	ErrCoupleNotFound  = errors.New("couple not found")
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
)

// ValidationError represents missing or malformed input, including malformed
// document ids. Maps to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AuthError represents a failed credential check. The message is deliberately
// uniform for unknown email and wrong password so callers cannot enumerate
// accounts. Maps to a 400 response.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates an authentication error with the given message
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ConflictError represents a business-rule conflict: duplicate email,
// duplicate pending request, or removal of a confirmed cart item. Maps to a
// 400 response.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a conflict error with the given message
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError represents a well-formed identifier that resolves to no
// document. Maps to a 404 response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "not found"
}

// NewNotFoundError creates a not-found error with the given message
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}
