package errors

import (
	"testing"
	"time"
)

func TestRecordError(t *testing.T) {
	err := NewRecordError(0xD800, ErrInvalidCodePoint)

	if !Is(err, ErrInvalidCodePoint) {
		t.Error("RecordError should match its sentinel cause")
	}

	var recErr *RecordError
	if !As(err, &recErr) {
		t.Fatal("errors.As should find RecordError")
	}
	if recErr.CodePoint != 0xD800 {
		t.Errorf("code point: expected 0xD800, got %#x", recErr.CodePoint)
	}
	if IsRetryable(err) {
		t.Error("conversion failures are not retryable")
	}
}

func TestRecognitionError(t *testing.T) {
	err := NewRecognitionError("decode response", ErrRecognitionMalformed).
		WithStatus(502).
		WithURL("http://example.test/recognize")

	if !Is(err, ErrRecognitionMalformed) {
		t.Error("RecognitionError should match its sentinel cause")
	}
	if !IsRetryable(err) {
		t.Error("recognition failures are retryable")
	}
	if IsUserFacing(err) {
		t.Error("recognition failures degrade silently, not user-facing")
	}

	if err.Error() == "" {
		t.Fatal("empty error message")
	}
}

func TestExportError(t *testing.T) {
	err := NewExportError("write png", ErrExportFailed).WithPath("/tmp/u1f600.png")

	if !IsUserFacing(err) {
		t.Error("export failures are user-facing")
	}
	if GetSeverity(err) != SeverityError {
		t.Errorf("severity: expected %v, got %v", SeverityError, GetSeverity(err))
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("batch size must be positive").
		WithField("grid.batch_size").
		WithValue(-1)

	if !Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if IsRetryable(err) {
		t.Error("validation failures are not retryable")
	}
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError("recognition request", 5*time.Second)

	if !Is(err, ErrTimeout) {
		t.Error("TimeoutError should match ErrTimeout")
	}
	if !IsRetryable(err) {
		t.Error("timeouts are retryable")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("boom")
	wrapped := Wrap(base, "loading table")
	if !Is(wrapped, base) {
		t.Error("wrapped error should match its base")
	}

	formatted := Wrapf(base, "export %s", "u0041.svg")
	if !Is(formatted, base) {
		t.Error("Wrapf result should match its base")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityDebug:    "debug",
		SeverityInfo:     "info",
		SeverityWarning:  "warning",
		SeverityError:    "error",
		SeverityCritical: "critical",
		Severity(99):     "unknown",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String(): expected %q, got %q", sev, want, got)
		}
	}
}
