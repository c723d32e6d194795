//go:build linux

package ioservice

import (
	"context"
	"syscall"
	"time"

	"github.com/brickingsoft/errors"
)

// waitTimeout bounds each WaitCQEs call so Run periodically re-submits
// instead of blocking forever. Grounded on vlourme-rio/pkg/ring/ring.go's
// waitTimeout (50ms, "todo wait timeout opt"): resolution there is also
// asynchronous across goroutines (listenCQ/listenSQ), so a bounded wait plus
// a re-submit on every tick is how the teacher itself avoids exactly the
// deadlock a nil/infinite wait would hit when a waiter resumes and queues a
// new SQE after the wait has already started blocking.
const waitTimeout = 50 * time.Millisecond

// RootTask is the single coroutine-shaped collaborator Run drives to
// completion (spec §4.E). It stands in for the original's
// task<T, nothrow> return value: something that knows whether the caller's
// chain of operations has finished, and what it finished with.
type RootTask interface {
	Done() bool
	Result() (int, error)
}

// Run is the event loop of spec §4.E/§5: submit whatever operation methods
// have queued up, wait up to waitTimeout for at least one completion,
// resolve every finished promise by its user-data address, and repeat until
// root reports done. Grounded on the original's run(), with one necessary
// departure: the original's coroutine resume is inline (the next SQE is
// queued during the very CQE walk that resumed it, strictly before
// io_uring_submit_and_wait), so a single submit/wait/walk-CQEs/advance cycle
// with an unbounded wait is safe there. Go's promise resolution instead
// hands control to a waiter goroutine via a channel send and returns to this
// loop immediately — the waiter is made runnable, not resumed inline — so a
// chained operation's SQE can still be unwritten by the time this loop would
// otherwise block forever in WaitCQEs. Using a bounded wait and re-submitting
// every tick (exactly as vlourme-rio/pkg/ring/ring.go's listenCQ does with
// its own waitTimeout) closes that gap: the next loop iteration's Submit
// picks up the chained SQE even if it arrived after this iteration's wait
// started.
//
// Exactly one goroutine may call Run on a given Service at a time, and it
// must not be called again after it returns. Every op_*.go method may be
// called freely from any goroutine, including from inside an Awaiter's
// resolution path while Run is draining CQEs — sqMu serializes all of
// those against Run's own ring access, so chained operations (e.g. a
// timeout-linked cancellation fired from a waiter's goroutine) can submit
// their follow-up SQE while Run sits blocked in WaitCQEs.
func (s *Service) Run(ctx context.Context, root RootTask) (int, error) {
	if root.Done() {
		return root.Result()
	}

	ts := syscall.NsecToTimespec(waitTimeout.Nanoseconds())

	for !root.Done() {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}

		s.sqMu.Lock()
		_, err := s.ring.Submit()
		s.sqMu.Unlock()
		if err != nil {
			s.logSetupFailure("submit", err)
			return 0, newSetupError("submit", err)
		}

		if _, err := s.ring.WaitCQEs(1, &ts, nil); err != nil && !errors.Is(err, syscall.ETIME) {
			s.logSetupFailure("wait_cqes", err)
			return 0, newSetupError("wait_cqes", err)
		}

		s.sqMu.Lock()
		s.drainCompletions()
		s.sqMu.Unlock()
	}

	return root.Result()
}
