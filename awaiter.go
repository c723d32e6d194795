//go:build linux

package ioservice

import (
	"context"
	"runtime"
)

// Awaiter is the transient value every Operation Surface method returns
// (spec §4.B). It binds one already-written SQE to a promise; Await is the
// suspension point. An Awaiter must not be copied, and — per spec §4.D's
// pointer-lifetime hazard — it owns (via pin) any buffer the prepared SQE
// still points at, so callers do not need to keep e.g. a Timeout's
// timespec or a Readv's iovec slice alive themselves.
type Awaiter struct {
	p   *promise
	pin any
}

func newAwaiter(p *promise, pin any) *Awaiter {
	return &Awaiter{p: p, pin: pin}
}

// preResolvedAwaiter returns an Awaiter whose result is already known — used by
// the compatibility fallback path (spec §4.D) for opcodes performed via a
// synchronous syscall instead of a kernel submission.
func preResolvedAwaiter(result int) *Awaiter {
	p := newPromise(nil, nil)
	p.resolve(result)
	return &Awaiter{p: p}
}

// Await suspends the caller until the kernel completion arrives (or the
// pre-resolved fallback result is available), then returns it interpreted
// per the kernel's >=0-success/<0-errno convention.
//
// Cancelling ctx before resolution runs the promise's cancellation hook,
// which asks the ring to cancel the in-flight operation; per spec §5 there
// is no synchronous cancel, so Await still blocks until the driver
// delivers the original completion, which will carry either the operation's
// natural result or -ECANCELED.
func (a *Awaiter) Await(ctx context.Context) (int, error) {
	defer runtime.KeepAlive(a.pin)

	select {
	case res := <-a.p.ch:
		return errnoResult(res)
	case <-ctx.Done():
		a.p.cancel()
		res := <-a.p.ch
		return errnoResult(res)
	}
}
