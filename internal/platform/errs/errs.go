package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind categorizes application errors.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates bad arguments, a malformed seed URL or an
	// unreadable input file.
	InvalidInput
	// Unreachable indicates the target URL could not be reached or
	// answered with an error status.
	Unreachable
	// Timeout indicates the target took too long to respond.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the target
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// KindOf returns the Kind of err. Errors that are not an AppError are
// classified from their cause: deadlines and network timeouts are Timeout,
// any other network error is Unreachable.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != Unknown {
		return appErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return Timeout
		}
		return Unreachable
	}
	return Unknown
}
