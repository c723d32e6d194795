//go:build linux

package ioservice

import (
	"syscall"

	"github.com/brickingsoft/errors"
)

// Sentinel errors. Defined with errors.Define so errors.Is matches across
// wraps, mirroring the teacher's own idiom in pkg/ring/error.go.
var (
	// ErrInvalidEntries is returned by WithEntries(0).
	ErrInvalidEntries = errors.Define("submission queue depth must be > 0")
	// ErrClosed is returned by Close when the Service is already closed.
	// No other Service method checks whether Close has been called.
	ErrClosed = errors.Define("service is closed")
	// ErrTimerExpired is the successful-expiry sentinel for a Timeout
	// completion result of -ETIME. It is not a failure: spec-wise, a timer
	// firing is the expected outcome, never a fatal setup-style error.
	ErrTimerExpired = errors.Define("timer expired")
	// ErrCanceled is returned from Await whenever the operation's
	// completion result is -ECANCELED, e.g. after the caller's context was
	// cancelled or when a linked timeout fired first.
	ErrCanceled = errors.Define("operation canceled")
	// ErrNotRegistered is returned (wrapped in an *OpError) by
	// UpdateRegisteredFiles when no file table is registered. ReadFixed and
	// WriteFixed without registered buffers resolve with -EINVAL instead.
	ErrNotRegistered = errors.Define("nothing registered")
)

// OpError names a failed setup or registration action together with the
// errno the kernel returned. Operation-level results (the int returned
// from Await) are not wrapped in OpError — per spec, those are returned
// verbatim and interpretation is left to the caller.
type OpError struct {
	Action string
	Err    error
	Errno  syscall.Errno
}

func (e *OpError) Error() string {
	if e.Errno != 0 {
		return e.Action + ": " + e.Errno.Error()
	}
	if e.Err != nil {
		return e.Action + ": " + e.Err.Error()
	}
	return e.Action + ": failed"
}

func (e *OpError) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}
	return e.Err
}

// newSetupError builds an *OpError from a negative-return-style failure,
// via github.com/brickingsoft/errors so a stack trace is captured in
// non-release builds. -ETIME is never routed here: callers must check for
// it before calling newSetupError, per spec §4.G/§7. Every call site also
// calls logSetupFailure (or the free logSetupFailure, before a Service
// exists) so a setup failure always surfaces through the configured
// logger, per spec §7.
func newSetupError(action string, err error) *OpError {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if e, ok := err.(syscall.Errno); ok {
		errno = e
	}
	return &OpError{
		Action: action,
		Err:    errors.From(err, errors.WithWrap(err)),
		Errno:  errno,
	}
}

// errnoResult interprets a raw completion result the way the kernel's
// convention dictates: >= 0 is a success value, < 0 is -errno. It never
// fails; interpretation of the int is left to the operation caller, per
// spec §4.A's "the promise itself never fails" contract. It exists only to
// give callers a convenient (int, error) pair instead of hand-rolling the
// sign check at every call site.
func errnoResult(res int) (int, error) {
	if res >= 0 {
		return res, nil
	}
	errno := syscall.Errno(-res)
	if errno == syscall.ETIME {
		return res, ErrTimerExpired
	}
	if errno == syscall.ECANCELED {
		return res, ErrCanceled
	}
	return res, errno
}

// isContractViolation panics with a captured-stack-trace error when cond
// holds, logging it first via logContractViolation iff the Service was
// configured with WithDebugAbort(true) (spec §7's debug-abort diagnostics
// path). The panic itself is unconditional; debugAbort only controls
// whether diagnostics are printed before it.
func (s *Service) isContractViolation(cond bool, msg string) {
	if !cond {
		return
	}
	err := errors.New("ioservice: contract violation: " + msg)
	if s.cfg.debugAbort {
		s.logContractViolation(err)
	}
	panic(err)
}
