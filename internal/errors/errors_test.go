package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestStoreError(t *testing.T) {
	t.Run("formats context", func(t *testing.T) {
		err := NewStoreError("remove", ErrTaskNotFound).WithTaskID(7).WithDriver("sqlite")
		want := "store error [op=remove, task=7, driver=sqlite]: task not found"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewStoreError("read", nil)
		if !strings.Contains(err.Error(), "read failed") {
			t.Errorf("Error() = %q, should mention the failed op", err.Error())
		}
	})

	t.Run("unwraps to sentinel", func(t *testing.T) {
		err := fmt.Errorf("controller: %w", NewStoreError("update", ErrTaskNotFound).WithTaskID(1))
		if !Is(err, ErrTaskNotFound) {
			t.Error("wrapped StoreError should match ErrTaskNotFound")
		}
		var storeErr *StoreError
		if !As(err, &storeErr) {
			t.Fatal("As should find the StoreError")
		}
		if storeErr.Op != "update" || storeErr.TaskID != 1 {
			t.Errorf("StoreError = %+v", storeErr)
		}
	})

	t.Run("retryable flag", func(t *testing.T) {
		err := NewStoreError("read", New("database is locked")).WithRetryable(true)
		if !IsRetryable(err) {
			t.Error("IsRetryable should be true")
		}
		if IsUserFacing(err) {
			t.Error("store errors are not user facing")
		}
		if GetSeverity(err) != SeverityError {
			t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityError)
		}
	})
}

func TestNotFoundError(t *testing.T) {
	err := TaskNotFound(42)

	if err.Error() != "task '42' not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !Is(err, ErrTaskNotFound) {
		t.Error("task NotFoundError should match ErrTaskNotFound")
	}
	if !IsNotFound(NewStoreError("remove", err)) {
		t.Error("IsNotFound should see through StoreError")
	}
	if Is(NewNotFoundError("theme", "nord"), ErrTaskNotFound) {
		t.Error("non-task NotFoundError should not match ErrTaskNotFound")
	}
	if !IsNotFound(NewNotFoundError("theme", "nord")) {
		t.Error("IsNotFound should match any NotFoundError")
	}
	if GetSeverity(err) != SeverityWarning {
		t.Errorf("GetSeverity() = %v, want warning", GetSeverity(err))
	}

	storeErr := NewStoreError("update", ErrTaskNotFound).WithTaskID(42)
	if GetSeverity(storeErr) != SeverityWarning {
		t.Errorf("GetSeverity(missing task) = %v, want warning", GetSeverity(storeErr))
	}
	if !IsUserFacing(storeErr) {
		t.Error("a missing task should be user facing")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("must not be empty"),
			want: "validation error: must not be empty",
		},
		{
			name: "field and value",
			err:  NewValidationError("unknown driver").WithField("store.driver").WithValue("redis"),
			want: "validation error [field=store.driver, value=redis]: unknown driver",
		},
		{
			name: "with cause",
			err:  NewValidationError("bad level").WithCause(ErrInvalidInput),
			want: "validation error: bad level: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
			if !Is(tt.err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}
			if !IsUserFacing(tt.err) {
				t.Error("ValidationError should be user facing")
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityDebug:    "debug",
		SeverityInfo:     "info",
		SeverityWarning:  "warning",
		SeverityError:    "error",
		SeverityCritical: "critical",
		Severity(99):     "unknown",
	}
	for sev, want := range tests {
		if sev.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), sev.String(), want)
		}
	}
}

func TestHelpersOnPlainErrors(t *testing.T) {
	plain := New("plain")

	if IsRetryable(plain) || IsUserFacing(plain) || IsNotFound(plain) {
		t.Error("plain errors should not be classified")
	}
	if GetSeverity(plain) != SeverityError {
		t.Error("plain errors default to SeverityError")
	}
	if GetSeverity(nil) != SeverityDebug {
		t.Error("nil error should be SeverityDebug")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) should be false")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	err := Wrapf(ErrTaskNotFound, "edit task %d", 3)
	if err.Error() != "edit task 3: task not found" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if !Is(Wrap(ErrStoreClosed, "read"), ErrStoreClosed) {
		t.Error("Wrap should preserve the chain")
	}
}
