package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotFound               = errors.New("not found")
	ErrAccountBlocked         = errors.New("account is blocked")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrForbidden              = errors.New("forbidden")
	ErrVerificationFailed     = errors.New("verification failed")
	ErrSuggestionUnavailable  = errors.New("failed to generate lucky numbers, please try again")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RequirePositive rejects zero and negative amounts.
func RequirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return NewValidationError(field, "must be greater than zero")
	}
	return nil
}

// EnsureActive rejects wallet activity on blocked accounts.
func (u *User) EnsureActive() error {
	if u.IsBlocked() {
		return ErrAccountBlocked
	}
	return nil
}
