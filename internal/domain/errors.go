package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline specific errors
	ErrFetchFailed           ErrorCode = "FETCH_FAILED"
	ErrGenerationUnavailable ErrorCode = "GENERATION_UNAVAILABLE"
	ErrRateLimited           ErrorCode = "RATE_LIMITED"
	ErrQuotaExhausted        ErrorCode = "QUOTA_EXHAUSTED"
	ErrMalformedGeneration   ErrorCode = "MALFORMED_GENERATION"
	ErrPersistenceFailed     ErrorCode = "PERSISTENCE_FAILED"
)

// DomainError represents a domain-specific error. Raw carries an upstream
// payload (e.g. unparseable model output) for operator-side diagnostics; it
// is never serialized and must never be returned to callers.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
	Raw     string    `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewFetchFailedError(message string, err error) *DomainError {
	return NewError(ErrFetchFailed, message, err)
}

func NewGenerationUnavailableError(message string, err error) *DomainError {
	return NewError(ErrGenerationUnavailable, message, err)
}

func NewRateLimitedError() *DomainError {
	return NewError(ErrRateLimited, "Rate limit exceeded. Please try again later.", nil)
}

func NewQuotaExhaustedError() *DomainError {
	return NewError(ErrQuotaExhausted, "AI credits exhausted. Please add credits to continue.", nil)
}

// NewMalformedGenerationError keeps the raw model output on the error so it
// can be logged for diagnostics without ever being coerced to a default.
func NewMalformedGenerationError(raw string, err error) *DomainError {
	e := NewError(ErrMalformedGeneration, "Failed to parse quiz data from model response", err)
	e.Raw = raw
	return e
}

func NewPersistenceFailedError(err error) *DomainError {
	return NewError(ErrPersistenceFailed, "Failed to save quiz", err)
}
