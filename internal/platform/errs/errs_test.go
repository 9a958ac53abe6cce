package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"
)

type timeoutErr struct{ timeout bool }

func (e timeoutErr) Error() string   { return "i/o" }
func (e timeoutErr) Timeout() bool   { return e.timeout }
func (e timeoutErr) Temporary() bool { return false }

var _ net.Error = timeoutErr{}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: Unknown},
		{name: "plain", err: errors.New("boom"), want: Unknown},
		{name: "app error", err: &AppError{Kind: InvalidInput, Message: "bad"}, want: InvalidInput},
		{name: "wrapped app error", err: fmt.Errorf("probe: %w", &AppError{Kind: Unreachable}), want: Unreachable},
		{name: "app error without kind", err: &AppError{Cause: context.DeadlineExceeded}, want: Timeout},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: Timeout},
		{name: "net timeout", err: timeoutErr{timeout: true}, want: Timeout},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "nowhere.example", IsNotFound: true}, want: Unreachable},
	}
	for _, tt := range tests {
		test.Assert(t, tt.name, tt.want, KindOf(tt.err))
	}
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &AppError{Kind: Unreachable, Message: "site is not accessible", Cause: cause}

	test.Assert(t, "error", "site is not accessible: connection refused", err.Error())
	test.Assert(t, "unwrap", true, errors.Is(err, cause))

	bare := &AppError{Kind: Unreachable, UpstreamStatus: 503, Message: "site returned status 503"}
	test.Assert(t, "bare", "site returned status 503", bare.Error())
}

func TestKind_String(t *testing.T) {
	test.Assert(t, "unknown", "unknown", Unknown.String())
	test.Assert(t, "invalid", "invalid_input", InvalidInput.String())
	test.Assert(t, "unreachable", "unreachable", Unreachable.String())
	test.Assert(t, "timeout", "timeout", Timeout.String())
}
