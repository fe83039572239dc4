package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad config")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidConfig, err.Code)
	}
	if err.Message != "bad config" {
		t.Errorf("expected message 'bad config', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_CONFIG should not be retryable")
	}
}

func TestAppError_NothingIsRetryable(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeInvalidConfig, ErrCodeInvalidInput, ErrCodeInvariantViolation,
		ErrCodeWorkerPanic, ErrCodeCanceled, ErrCodeInternal,
	}
	for _, code := range codes {
		if IsRetryableCode(code) {
			t.Errorf("%s should not be retryable", code)
		}
	}
}

func TestAppError_InvalidConfig_Success(t *testing.T) {
	err := InvalidConfig("matrix_size", "matrix_size squared overflows int")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", err.Code)
	}
	if err.Details["field"] != "matrix_size" {
		t.Errorf("expected field=matrix_size, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "overflows") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_InvalidConfig_EmptyField(t *testing.T) {
	err := InvalidConfig("", "broken")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_Invariant_Success(t *testing.T) {
	err := Invariant("expected 5 results, collected 4")
	if err.Code != ErrCodeInvariantViolation {
		t.Errorf("expected INVARIANT_VIOLATION, got %s", err.Code)
	}
	if !strings.Contains(err.Error(), "expected 5 results") {
		t.Errorf("expected reason in error string, got %q", err.Error())
	}
}

func TestAppError_WorkerPanic_Success(t *testing.T) {
	err := WorkerPanic("consumer", "index out of range")
	if err.Code != ErrCodeWorkerPanic {
		t.Errorf("expected WORKER_PANIC, got %s", err.Code)
	}
	if err.Details["role"] != "consumer" {
		t.Errorf("expected role=consumer, got %v", err.Details["role"])
	}
	if err.Cause == nil {
		t.Error("expected recovered value wrapped as cause")
	}
}

func TestAppError_Canceled_Success(t *testing.T) {
	cause := fmt.Errorf("context canceled")
	err := Canceled("produce", cause)
	if err.Code != ErrCodeCanceled {
		t.Errorf("expected CANCELED, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if !stderrors.Is(err, cause) {
		t.Error("stderrors.Is should see through to the cause")
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("something broke")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := Invariant("count mismatch")
	if !strings.HasPrefix(err.Error(), "INVARIANT_VIOLATION: ") {
		t.Errorf("expected code prefix in error string, got %q", err.Error())
	}

	withCause := Internal(fmt.Errorf("root"))
	if !strings.Contains(withCause.Error(), "cause: root") {
		t.Errorf("expected cause in error string, got %q", withCause.Error())
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := fmt.Errorf("root")
	err := Invariant("broken").WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Invariant("broken").WithDetail("expected", 5).WithDetail("got", 4)
	if err.Details["expected"] != 5 || err.Details["got"] != 4 {
		t.Errorf("expected details to accumulate, got %v", err.Details)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(Invariant("x")); got != ErrCodeInvariantViolation {
		t.Errorf("expected INVARIANT_VIOLATION, got %s", got)
	}
	wrapped := fmt.Errorf("outer: %w", Canceled("consume", nil))
	if got := CodeOf(wrapped); got != ErrCodeCanceled {
		t.Errorf("expected CANCELED through wrapping, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR for plain errors, got %s", got)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Invariant("x")) {
		t.Error("expected AppError to be recognized")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected plain error to not be an AppError")
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := WorkerPanic("producer", "boom")
	wrapped := fmt.Errorf("run failed: %w", inner)
	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if got != inner {
		t.Error("expected the original AppError")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Invariant("x")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
