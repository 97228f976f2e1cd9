// Package errors provides the error definitions and helpers used across
// todomvc. It defines sentinel errors, typed errors carrying context, and
// classification helpers.
//
// # Error Types
//
//   - StoreError: a store operation failed (op, task id, driver)
//   - NotFoundError: a task or other resource does not exist
//   - ValidationError: invalid input or configuration
//
// # Usage
//
//	err := errors.NewStoreError("update", errors.ErrTaskNotFound).WithTaskID(42)
//
//	if errors.Is(err, errors.ErrTaskNotFound) { ... }
//	if errors.IsNotFound(err) { ... }
//
//	var storeErr *errors.StoreError
//	if errors.As(err, &storeErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// Severity represents the severity level of an error.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Store-related sentinel errors
var (
	// ErrTaskNotFound indicates that no task has the requested id.
	ErrTaskNotFound = New("task not found")
	// ErrStoreClosed indicates use of a store after Close.
	ErrStoreClosed = New("store is closed")
	// ErrUnknownDriver indicates a store driver name that has no backend.
	ErrUnknownDriver = New("unknown store driver")
	// ErrCorruptDocument indicates a file store document that cannot be decoded.
	ErrCorruptDocument = New("store document corrupted")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrUnsupportedFormat indicates an export format that is not implemented.
	ErrUnsupportedFormat = New("unsupported format")
)

// -----------------------------------------------------------------------------
// Base Error
// -----------------------------------------------------------------------------

// TodoError is implemented by every typed error in this package.
type TodoError interface {
	error
	Unwrap() error
	Severity() Severity
	IsRetryable() bool
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// StoreError
// -----------------------------------------------------------------------------

// StoreError reports a failed store operation.
//
// Example:
//
//	err := errors.NewStoreError("remove", errors.ErrTaskNotFound).WithTaskID(7).WithDriver("sqlite")
//	fmt.Println(err) // "store error [op=remove, task=7, driver=sqlite]: task not found"
type StoreError struct {
	baseError
	Op     string
	TaskID int
	Driver string
}

// NewStoreError creates a StoreError for op wrapping cause. A missing task
// is a warning and user facing; anything else is an error.
func NewStoreError(op string, cause error) *StoreError {
	severity, userFacing := SeverityError, false
	if IsNotFound(cause) {
		severity, userFacing = SeverityWarning, true
	}
	return &StoreError{
		baseError: baseError{
			message:    op + " failed",
			cause:      cause,
			severity:   severity,
			userFacing: userFacing,
		},
		Op: op,
	}
}

// WithTaskID adds the task id to the error context.
func (e *StoreError) WithTaskID(id int) *StoreError {
	e.TaskID = id
	return e
}

// WithDriver adds the store driver name to the error context.
func (e *StoreError) WithDriver(driver string) *StoreError {
	e.Driver = driver
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *StoreError) WithRetryable(r bool) *StoreError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	parts := []string{"op=" + e.Op}
	if e.TaskID != 0 {
		parts = append(parts, fmt.Sprintf("task=%d", e.TaskID))
	}
	if e.Driver != "" {
		parts = append(parts, "driver="+e.Driver)
	}

	prefix := fmt.Sprintf("store error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix + ": " + e.message
}

// -----------------------------------------------------------------------------
// NotFoundError
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
// It matches ErrTaskNotFound when the resource is a task.
//
// Example:
//
//	err := errors.NewNotFoundError("task", "42")
//	fmt.Println(err) // "task '42' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// TaskNotFound creates a NotFoundError for a task id.
func TaskNotFound(id int) *NotFoundError {
	return NewNotFoundError("task", fmt.Sprint(id))
}

// Is reports whether target is ErrTaskNotFound for a task resource.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound && e.ResourceType == "task"
}

// -----------------------------------------------------------------------------
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown driver").WithField("store.driver").WithValue("redis")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsNotFound reports whether err means a task or resource does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *NotFoundError
	return Is(err, ErrTaskNotFound) || As(err, &notFound)
}

// IsRetryable returns true if the error represents a transient condition.
func IsRetryable(err error) bool {
	var todoErr TodoError
	if As(err, &todoErr) {
		return todoErr.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to users.
func IsUserFacing(err error) bool {
	var todoErr TodoError
	if As(err, &todoErr) {
		return todoErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TodoError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var todoErr TodoError
	if As(err, &todoErr) {
		return todoErr.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
