package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors, detected before any goroutine starts.
const (
	// ErrCodeInvalidConfig indicates the pipeline configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a value failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Runtime errors, surfaced when the orchestrator joins its workers.
const (
	// ErrCodeInvariantViolation indicates a broken internal invariant,
	// such as a result count that does not match the configured
	// iteration count. Always a logic bug, never an environmental fault.
	ErrCodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
	// ErrCodeWorkerPanic indicates a producer or consumer goroutine panicked.
	ErrCodeWorkerPanic ErrorCode = "WORKER_PANIC"
	// ErrCodeCanceled indicates the run was interrupted by context cancellation.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// No error in this module is transient: the pipeline has no retry logic,
// and every runtime failure indicates either a logic bug or a deliberate
// cancellation.
var retryableCodes = map[ErrorCode]bool{}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
