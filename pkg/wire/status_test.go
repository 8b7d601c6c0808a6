package wire

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
		err    string
	}{
		{StatusNoError, "NO_ERROR", "0.00 NO_ERROR"},
		{StatusBadRequest, "BAD_REQUEST", "4.00 BAD_REQUEST"},
		{StatusForbidden, "FORBIDDEN", "4.03 FORBIDDEN"},
		{StatusNotFound, "NOT_FOUND", "4.04 NOT_FOUND"},
		{StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "4.05 METHOD_NOT_ALLOWED"},
		{StatusNotAcceptable, "NOT_ACCEPTABLE", "4.06 NOT_ACCEPTABLE"},
		{StatusPreconditionFailed, "PRECONDITION_FAILED", "4.12 PRECONDITION_FAILED"},
		{StatusInternalServerError, "INTERNAL_SERVER_ERROR", "5.00 INTERNAL_SERVER_ERROR"},
		{StatusNotImplemented, "NOT_IMPLEMENTED", "5.01 NOT_IMPLEMENTED"},
		{Status(0x45), "UNKNOWN", "2.05 UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%#x).String() = %q, want %q", uint8(tt.status), got, tt.want)
		}
		if got := tt.status.Error(); got != tt.err {
			t.Errorf("Status(%#x).Error() = %q, want %q", uint8(tt.status), got, tt.err)
		}
	}
}

func TestStatusSuccess(t *testing.T) {
	if !StatusNoError.IsSuccess() || StatusNoError.IsError() {
		t.Error("NoError should be success")
	}
	if StatusNotFound.IsSuccess() || !StatusNotFound.IsError() {
		t.Error("NotFound should be an error")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != StatusNoError {
		t.Errorf("StatusOf(nil) = %v, want NO_ERROR", got)
	}
	if got := StatusOf(StatusForbidden); got != StatusForbidden {
		t.Errorf("StatusOf(Forbidden) = %v", got)
	}
	wrapped := fmt.Errorf("short id 7: %w", StatusForbidden)
	if got := StatusOf(wrapped); got != StatusForbidden {
		t.Errorf("StatusOf(wrapped) = %v, want FORBIDDEN", got)
	}
	if got := StatusOf(errors.New("boom")); got != StatusInternalServerError {
		t.Errorf("StatusOf(plain) = %v, want INTERNAL_SERVER_ERROR", got)
	}
}

func TestErrorf(t *testing.T) {
	if err := Errorf(StatusNoError, "ignored"); err != nil {
		t.Errorf("Errorf(NoError) = %v, want nil", err)
	}

	err := Errorf(StatusNotAcceptable, "resource %d", 5)
	if !errors.Is(err, StatusNotAcceptable) {
		t.Errorf("errors.Is(%v, NotAcceptable) = false", err)
	}
	if err.Error() != "resource 5: 4.06 NOT_ACCEPTABLE" {
		t.Errorf("Error() = %q", err.Error())
	}
}
