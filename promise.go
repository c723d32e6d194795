//go:build linux

package ioservice

import (
	"sync/atomic"
	"unsafe"
)

// cancelFunc is the promise's cancellation hook: a function value plus an
// opaque context pointer, both stored inline in the promise. The hooks
// submitOp installs come from (*Service).cancelFn, which returns a new
// closure over the Service for each submission, with a nil context.
type cancelFunc func(userData uint64, ctx unsafe.Pointer)

// promise is the one-shot completion cell of spec §3/§4.A. Its address is
// used as the kernel's opaque "user data" for exactly one in-flight
// submission; the buffered channel of capacity 1 makes resolve() never
// block and Await() never block once resolved, which is the Go-idiomatic
// realization of the spec's three promise states (see SPEC_FULL.md §3).
type promise struct {
	ch        chan int
	resolved  atomic.Bool
	cancelFn  cancelFunc
	cancelCtx unsafe.Pointer
}

// newPromise constructs an unresolved promise. cancelFn, if non-nil, is
// invoked at most once if the waiter is cancelled before resolution; it is
// expected to enqueue an async-cancel submission targeting this promise's
// user-data value.
func newPromise(cancelFn cancelFunc, cancelCtx unsafe.Pointer) *promise {
	return &promise{
		ch:        make(chan int, 1),
		cancelFn:  cancelFn,
		cancelCtx: cancelCtx,
	}
}

// userData returns the stable address used as kernel user data. It is
// stable from construction until after resolution, per the promise
// invariant in spec §3.
func (p *promise) userData() uint64 {
	return uint64(uintptr(unsafe.Pointer(p)))
}

// resolve stores the completion result and wakes any waiter. Resolving an
// already-resolved promise is a no-op: every submitted operation resolves
// its promise exactly once (spec §8's exactly-once property), and resolve
// is the only writer, so a second call can only happen if the driver walks
// a stray completion — which must never happen but is tolerated here
// rather than panicking. drainCompletions (gatekeeper.go) does not check
// the CQE user-data round trip either; it resolves whatever non-zero
// user data it reads.
func (p *promise) resolve(result int) {
	if !p.resolved.CompareAndSwap(false, true) {
		return
	}
	p.ch <- result
}

// cancel runs the cancellation hook exactly once, if the promise has not
// already resolved. It does not itself resolve the promise: per spec §5,
// the caller only observes cancellation when the driver later delivers the
// original completion (possibly with result -ECANCELED).
func (p *promise) cancel() {
	if p.cancelFn == nil || p.resolved.Load() {
		return
	}
	fn := p.cancelFn
	p.cancelFn = nil
	fn(p.userData(), p.cancelCtx)
}

// promiseFromUserData recovers the promise pointer the kernel handed back
// as a CQE's opaque user-data word. Grounded on the original's
// io_uring_cqe_get_data cast and on vlourme-rio/pkg/ring/ring.go's identical
// (*Operation)(unsafe.Pointer(uintptr(cqe.UserData))) cast.
func promiseFromUserData(userData uint64) *promise {
	return (*promise)(unsafe.Pointer(uintptr(userData)))
}

// await blocks the calling goroutine — this is the suspension point of
// spec §4.B — until resolve has been called, then returns the stored
// result.
func (p *promise) await() int {
	return <-p.ch
}
