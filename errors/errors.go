package errors

import "fmt"

// AppError is the unified error type returned by matrixflow operations.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf returns the ErrorCode carried by err, or ErrCodeInternal if err is
// not an AppError.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// --- Common Error Constructors ---

// InvalidConfig creates a new AppError for an invalid configuration field.
func InvalidConfig(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// Invariant creates a new AppError for a broken internal invariant.
func Invariant(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvariantViolation, Message: fmt.Sprintf("Internal invariant violated: %s", reason),
		Retryable: false,
	}
}

// WorkerPanic creates a new AppError for a goroutine that panicked.
// The recovered value is recorded both as a detail and as the cause.
func WorkerPanic(role string, recovered any) *AppError {
	return &AppError{
		Code: ErrCodeWorkerPanic, Message: fmt.Sprintf("The %s goroutine panicked.", role),
		Retryable: false,
		Details:   map[string]any{"role": role, "panic": fmt.Sprintf("%v", recovered)},
		Cause:     fmt.Errorf("panic: %v", recovered),
	}
}

// Canceled creates a new AppError for a run interrupted by context cancellation.
func Canceled(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeCanceled, Message: fmt.Sprintf("The %s operation was canceled.", operation),
		Retryable: false,
		Details:   map[string]any{"operation": operation},
		Cause:     cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}
