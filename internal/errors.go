package internal

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of solver cache error
type ErrorType int

const (
	// ErrorTypeUnsupported indicates a (size, metric) pair with no solving strategy
	ErrorTypeUnsupported ErrorType = iota
	// ErrorTypeCorrupt indicates lookup-table bytes that failed their integrity check
	ErrorTypeCorrupt
	// ErrorTypePersistence indicates a failure writing a freshly built table
	ErrorTypePersistence
	// ErrorTypeNotFound indicates a cache miss in a table store
	ErrorTypeNotFound
	// ErrorTypeMalformed indicates a move sequence the optimizer cannot process
	ErrorTypeMalformed
	// ErrorTypeSolveFailed indicates the underlying search found no solution
	ErrorTypeSolveFailed
	// ErrorTypeValidation indicates input validation failure
	ErrorTypeValidation
	// ErrorTypeConnection indicates a store backend connection error
	ErrorTypeConnection
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeUnsupported:
		return "UNSUPPORTED"
	case ErrorTypeCorrupt:
		return "CORRUPT"
	case ErrorTypePersistence:
		return "PERSISTENCE"
	case ErrorTypeNotFound:
		return "NOT_FOUND"
	case ErrorTypeMalformed:
		return "MALFORMED"
	case ErrorTypeSolveFailed:
		return "SOLVE_FAILED"
	case ErrorTypeValidation:
		return "VALIDATION"
	case ErrorTypeConnection:
		return "CONNECTION"
	default:
		return "UNKNOWN"
	}
}

// CacheError represents a solver-cache error with context
type CacheError struct {
	Type    ErrorType
	Key     string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CacheError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("solver cache error [%s] for key '%s': %s", e.Type, e.Key, e.Message)
	}
	return fmt.Sprintf("solver cache error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause error
func (e *CacheError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *CacheError) Is(target error) bool {
	if t, ok := target.(*CacheError); ok {
		return e.Type == t.Type
	}
	return false
}

// NewCacheError creates a new CacheError
func NewCacheError(errType ErrorType, key, message string, cause error) *CacheError {
	return &CacheError{
		Type:    errType,
		Key:     key,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsupportedError creates a configuration-unsupported error
func NewUnsupportedError(key, message string) *CacheError {
	return NewCacheError(ErrorTypeUnsupported, key, message, nil)
}

// NewCorruptError creates a corrupt-table error
func NewCorruptError(key string, cause error) *CacheError {
	return NewCacheError(ErrorTypeCorrupt, key, "lookup table failed integrity check", cause)
}

// NewPersistenceError creates a persistence error
func NewPersistenceError(key, message string, cause error) *CacheError {
	return NewCacheError(ErrorTypePersistence, key, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(key string) *CacheError {
	return NewCacheError(ErrorTypeNotFound, key, "key not found in store", nil)
}

// NewMalformedError creates a malformed-sequence error
func NewMalformedError(message string, cause error) *CacheError {
	return NewCacheError(ErrorTypeMalformed, "", message, cause)
}

// NewSolveFailedError creates a solve failure error
func NewSolveFailedError(key, message string, cause error) *CacheError {
	return NewCacheError(ErrorTypeSolveFailed, key, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *CacheError {
	return NewCacheError(ErrorTypeValidation, "", message, cause)
}

// NewConnectionError creates a store connection error
func NewConnectionError(message string, cause error) *CacheError {
	return NewCacheError(ErrorTypeConnection, "", message, cause)
}

// IsUnsupportedError checks if the error is a configuration-unsupported error
func IsUnsupportedError(err error) bool {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == ErrorTypeUnsupported
	}
	return false
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsMalformedError checks if the error is a malformed-sequence error
func IsMalformedError(err error) bool {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == ErrorTypeMalformed
	}
	return false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == ErrorTypeValidation
	}
	return false
}

// IsPersistenceError checks if the error is a persistence error
func IsPersistenceError(err error) bool {
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == ErrorTypePersistence
	}
	return false
}
