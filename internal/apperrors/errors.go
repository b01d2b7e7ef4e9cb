package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError wraps an underlying error with an HTTP-ish status code and a message
// safe to surface to clients.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// FieldErrors maps a field path (e.g. "chequeDetails.amount" or
// "bankProcessing.bounceReason") to a human-readable message. It is the
// result type of record validation: all violations are collected, none
// short-circuit, and an empty map means the input is valid.
type FieldErrors map[string]string

// Add records a message for a field path, keeping the first message if the
// field already has one.
func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// HasErrors reports whether any violation was recorded.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Error implements the error interface so a FieldErrors value can be wrapped
// and propagated like any other error. Fields are sorted for stable output.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "no validation errors"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return strings.Join(parts, "; ")
}

// Is makes errors.Is(fe, ErrValidation) hold for any non-empty FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation && len(fe) > 0
}
