// Package errors provides the typed domain errors used across the forecast engine.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeParameter indicates a scenario parameter outside its valid range
	TypeParameter Type = "PARAMETER_ERROR"

	// TypeAllocation indicates a degenerate allocation: a proportional
	// split was required over a zero total
	TypeAllocation Type = "ALLOCATION_ERROR"

	// TypeScenario indicates a scenario file problem
	TypeScenario Type = "SCENARIO_ERROR"

	// TypeConfig indicates an application configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotSupported indicates an unsupported operation
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext attaches a key/value pair identifying where the error arose
// (offending field, year, entity)
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Parameter creates a parameter-range error naming the offending field
func Parameter(field, detail string) *Error {
	return Newf(TypeParameter, "parameter %s %s", field, detail).
		WithContext("field", field)
}

// Allocation creates a degenerate-allocation error for a specific year
func Allocation(year int, detail string) *Error {
	return Newf(TypeAllocation, "year %d: %s", year, detail).
		WithContext("year", year)
}

// Scenario creates a scenario file error
func Scenario(message string, cause error) *Error {
	return Wrap(TypeScenario, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
