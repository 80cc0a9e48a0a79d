// Package errors provides centralized error definitions and error handling
// utilities for the Runegrid codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - RecordError: a code point could not be converted to a display record
//   - RecognitionError: errors from the glyph recognition service
//   - ExportError: errors writing glyph image files
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//   - TimeoutError: operation timed out
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewRecordError(0xD800, errors.ErrInvalidCodePoint)
//	err := errors.NewRecognitionError("decode response", baseErr).WithStatus(502)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInvalidCodePoint) { ... }
//
//	var recErr *errors.RecordError
//	if errors.As(err, &recErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed on retry
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns a human-readable name for the severity.
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

// Record-related sentinel errors
var (
	// ErrInvalidCodePoint indicates a code point outside the valid Unicode
	// range or inside the surrogate range.
	ErrInvalidCodePoint = New("invalid code point")
	// ErrCategoryNotFound indicates an unknown category identifier.
	ErrCategoryNotFound = New("category not found")
)

// Recognition-related sentinel errors
var (
	// ErrRecognitionUnavailable indicates the recognition service could not
	// be reached.
	ErrRecognitionUnavailable = New("recognition service unavailable")
	// ErrRecognitionMalformed indicates the service returned a response
	// that could not be decoded.
	ErrRecognitionMalformed = New("malformed recognition response")
	// ErrStaleResult indicates a result arrived for a query the user has
	// already moved away from.
	ErrStaleResult = New("stale recognition result")
)

// Export-related sentinel errors
var (
	// ErrExportFailed indicates a glyph image file could not be written.
	ErrExportFailed = New("export failed")
	// ErrNothingSelected indicates a bulk export was requested with an
	// empty selection.
	ErrNothingSelected = New("nothing selected")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// RunegridError is the base interface for all Runegrid errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type RunegridError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
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

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
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
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// RecordError represents a failure to build a display record from a code
// point. Batch builders catch it and skip the offending entry.
type RecordError struct {
	baseError
	CodePoint rune
}

// NewRecordError creates a RecordError for the given code point.
func NewRecordError(codePoint rune, cause error) *RecordError {
	return &RecordError{
		baseError: baseError{
			message:    "record error",
			cause:      cause,
			severity:   SeverityDebug,
			retryable:  false,
			userFacing: false,
		},
		CodePoint: codePoint,
	}
}

// Error returns the error message with the offending code point.
func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s [code point=%#x]", e.message, e.CodePoint)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks sentinel and type matches for RecordError.
func (e *RecordError) Is(target error) bool {
	if _, ok := target.(*RecordError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// RecognitionError represents errors from the glyph recognition service.
type RecognitionError struct {
	baseError
	StatusCode int
	URL        string
}

// NewRecognitionError creates a RecognitionError with the given message and cause.
func NewRecognitionError(message string, cause error) *RecognitionError {
	return &RecognitionError{
		baseError: baseError{
			message:    "recognition error: " + message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: false,
		},
	}
}

// WithStatus attaches the HTTP status code from the service response.
func (e *RecognitionError) WithStatus(code int) *RecognitionError {
	e.StatusCode = code
	return e
}

// WithURL attaches the service URL.
func (e *RecognitionError) WithURL(url string) *RecognitionError {
	e.URL = url
	return e
}

// Error returns the error message with status context when present.
func (e *RecognitionError) Error() string {
	msg := e.message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s [status=%d]", msg, e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks sentinel and type matches for RecognitionError.
func (e *RecognitionError) Is(target error) bool {
	if _, ok := target.(*RecognitionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ExportError represents a failure writing a glyph image file.
type ExportError struct {
	baseError
	Path string
}

// NewExportError creates an ExportError with the given message and cause.
func NewExportError(message string, cause error) *ExportError {
	return &ExportError{
		baseError: baseError{
			message:    "export error: " + message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithPath attaches the destination path.
func (e *ExportError) WithPath(path string) *ExportError {
	e.Path = path
	return e
}

// Error returns the error message with the destination path when present.
func (e *ExportError) Error() string {
	msg := e.message
	if e.Path != "" {
		msg = fmt.Sprintf("%s [path=%s]", msg, e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks sentinel and type matches for ExportError.
func (e *ExportError) Is(target error) bool {
	if _, ok := target.(*ExportError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError indicates that a resource could not be found.
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a NotFoundError for the given resource.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s not found: %s", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause attaches an underlying error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Is checks type matches for NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    "validation error: " + message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField attaches the name of the invalid field.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue attaches the invalid value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause attaches an underlying error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the error message with field context when present.
func (e *ValidationError) Error() string {
	msg := e.message
	if e.Field != "" {
		msg = fmt.Sprintf("%s [field=%s]", msg, e.Field)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks sentinel and type matches for ValidationError.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError indicates that an operation timed out.
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a TimeoutError for the given operation.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    fmt.Sprintf("%s timed out after %s", operation, duration),
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// WithCause attaches an underlying error.
func (e *TimeoutError) WithCause(cause error) *TimeoutError {
	e.cause = cause
	return e
}

// Is checks sentinel and type matches for TimeoutError.
func (e *TimeoutError) Is(target error) bool {
	if target == ErrTimeout {
		return true
	}
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable reports whether the error is transient and the operation may
// succeed on retry. External service failures are retryable; conversion
// and validation failures are not.
func IsRetryable(err error) bool {
	var re RunegridError
	if errors.As(err, &re) {
		return re.IsRetryable()
	}
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrRecognitionUnavailable)
}

// IsUserFacing reports whether the error message is safe to display to
// end users.
func IsUserFacing(err error) bool {
	var re RunegridError
	if errors.As(err, &re) {
		return re.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity of the error, defaulting to
// SeverityError for unclassified errors.
func GetSeverity(err error) Severity {
	var re RunegridError
	if errors.As(err, &re) {
		return re.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with a message. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message. Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
