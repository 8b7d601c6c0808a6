package wire

import (
	"errors"
	"fmt"
)

// Status represents a CoAP-style response code.
type Status uint8

const (
	// StatusNoError indicates the operation completed successfully.
	StatusNoError Status = 0x00

	// StatusBadRequest (4.00) indicates a malformed argument.
	StatusBadRequest Status = 0x80

	// StatusForbidden (4.03) indicates a reserved or already used identifier.
	StatusForbidden Status = 0x83

	// StatusNotFound (4.04) indicates the target doesn't exist.
	StatusNotFound Status = 0x84

	// StatusMethodNotAllowed (4.05) indicates an unsupported operation.
	StatusMethodNotAllowed Status = 0x85

	// StatusNotAcceptable (4.06) indicates an argument combination that can't be served.
	StatusNotAcceptable Status = 0x86

	// StatusPreconditionFailed (4.12) indicates the target is in the wrong state.
	StatusPreconditionFailed Status = 0x8C

	// StatusInternalServerError (5.00) indicates resource exhaustion or an unexpected failure.
	StatusInternalServerError Status = 0xA0

	// StatusNotImplemented (5.01) indicates a feature that is not available.
	StatusNotImplemented Status = 0xA1
)

// Class returns the code class (2, 4 or 5 for non-zero codes).
func (s Status) Class() uint8 {
	return uint8(s) >> 5
}

// Detail returns the code detail.
func (s Status) Detail() uint8 {
	return uint8(s) & 0x1F
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNoError:
		return "NO_ERROR"
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusForbidden:
		return "FORBIDDEN"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case StatusNotAcceptable:
		return "NOT_ACCEPTABLE"
	case StatusPreconditionFailed:
		return "PRECONDITION_FAILED"
	case StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case StatusNotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return "UNKNOWN"
	}
}

// Error implements the error interface, e.g. "4.03 FORBIDDEN".
func (s Status) Error() string {
	return fmt.Sprintf("%d.%02d %s", s.Class(), s.Detail(), s.String())
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusNoError
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusNoError
}

// StatusOf maps an error to its Status.
// nil maps to StatusNoError and errors without a Status in their chain map to
// StatusInternalServerError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusNoError
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusInternalServerError
}

// Errorf wraps status with a formatted message. A NoError status yields nil.
func Errorf(status Status, format string, args ...any) error {
	if status == StatusNoError {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), status)
}
