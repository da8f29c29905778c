// Package errors provides custom error types for the bigmonctl system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the bigmonctl system
var (
	// ErrMissingCredential indicates that no access token was supplied and
	// the BIGSWITCH_ACCESS_TOKEN environment variable is empty
	ErrMissingCredential = errors.New("access token missing")

	// ErrPolicyNotFound indicates that a requested policy was not found
	ErrPolicyNotFound = errors.New("policy not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrControllerUnavailable indicates that the controller is temporarily unavailable
	ErrControllerUnavailable = errors.New("controller unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// CredentialError represents a missing or unusable controller credential
type CredentialError struct {
	EnvVar  string
	Message string
}

// Error implements the error interface
func (e *CredentialError) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("%s: provide one explicitly or set the %s environment variable", e.Message, e.EnvVar)
	}
	return e.Message
}

// Is implements errors.Is support
func (e *CredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// NewCredentialError creates a new CredentialError
func NewCredentialError(envVar, message string) *CredentialError {
	return &CredentialError{EnvVar: envVar, Message: message}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Name     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrPolicyNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigFetchError represents a failure to read the existing policy
// configuration from the controller
type ConfigFetchError struct {
	Controller string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ConfigFetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to obtain existing policy config: %s", e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to obtain existing policy config: status %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to obtain existing policy config: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ConfigFetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigFetchError) Is(target error) bool {
	return e.StatusCode >= 500 && target == ErrControllerUnavailable
}

// NewConfigFetchError creates a new ConfigFetchError
func NewConfigFetchError(controller string, statusCode int, message string) *ConfigFetchError {
	return &ConfigFetchError{
		Controller: controller,
		StatusCode: statusCode,
		Message:    message,
	}
}

// PolicyWriteError represents a failed mutating call against the policy
// collection. Op is "create" or "delete".
type PolicyWriteError struct {
	Op         string
	Name       string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *PolicyWriteError) Error() string {
	verb := e.Op
	switch e.Op {
	case "create":
		verb = "creating"
	case "delete":
		verb = "deleting"
	}
	if e.Message != "" {
		return fmt.Sprintf("error %s policy '%s': %s", verb, e.Name, e.Message)
	}
	return fmt.Sprintf("error %s policy '%s': status %d", verb, e.Name, e.StatusCode)
}

// Unwrap implements errors.Unwrap
func (e *PolicyWriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PolicyWriteError) Is(target error) bool {
	return e.StatusCode >= 500 && target == ErrControllerUnavailable
}

// NewPolicyWriteError creates a new PolicyWriteError
func NewPolicyWriteError(op, name string, statusCode int, message string) *PolicyWriteError {
	return &PolicyWriteError{
		Op:         op,
		Name:       name,
		StatusCode: statusCode,
		Message:    message,
	}
}

// TransportError represents a network-level failure before any HTTP status
// was received
type TransportError struct {
	Op  string // "get", "put", "delete"
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error during %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support, mapping context errors onto the timeout
// and cancellation sentinels.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return errors.Is(e.Err, context.DeadlineExceeded)
	case ErrCanceled:
		return errors.Is(e.Err, context.Canceled)
	}
	return false
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsMissingCredential checks if an error indicates a missing access token
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsPolicyNotFound checks if an error is a policy not found error
func IsPolicyNotFound(err error) bool {
	return errors.Is(err, ErrPolicyNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsControllerUnavailable checks if an error indicates controller unavailability
func IsControllerUnavailable(err error) bool {
	return errors.Is(err, ErrControllerUnavailable)
}

// IsFetchError checks if an error is a ConfigFetchError
func IsFetchError(err error) bool {
	var fetchErr *ConfigFetchError
	return errors.As(err, &fetchErr)
}

// IsWriteError checks if an error is a PolicyWriteError
func IsWriteError(err error) bool {
	var writeErr *PolicyWriteError
	return errors.As(err, &writeErr)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapTransport wraps an error as a TransportError
func WrapTransport(op, url string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, URL: url, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}

// WrapFetch wraps an error as a ConfigFetchError
func WrapFetch(controller string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigFetchError{Controller: controller, Err: err}
}

// WrapWrite wraps an error as a PolicyWriteError
func WrapWrite(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &PolicyWriteError{Op: op, Name: name, Err: err}
}
